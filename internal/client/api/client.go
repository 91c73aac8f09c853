package api

import (
	"context"

	"github.com/avelev/schoolguard/internal/client/models"
)

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the account creation payload. ConfirmPassword is a
// client-side field only and is never sent over the wire.
type SignupRequest struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	AgreeTerms bool   `json:"agreeTerms"`
}

// AuthResult is the backend's response to a successful login or signup.
type AuthResult struct {
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
	Message string       `json:"message,omitempty"`
}

// CreateVolunteerRequest is the payload for registering a new volunteer.
type CreateVolunteerRequest struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Role             string   `json:"role"`
	Schedule         string   `json:"schedule,omitempty"`
	EmergencyContact string   `json:"emergencyContact,omitempty"`
	Skills           []string `json:"skills,omitempty"`
}

// Client defines the remote operations available to the admin console.
// Each operation is independent; none is transactional with another.
// Implementations must not retry failed calls.
type Client interface {
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	AdminLogin(ctx context.Context, creds Credentials) (*AuthResult, error)
	Signup(ctx context.Context, req SignupRequest) (*AuthResult, error)

	GetVolunteers(ctx context.Context) ([]models.Volunteer, error)
	CreateVolunteer(ctx context.Context, req CreateVolunteerRequest) (*models.Volunteer, error)
	CheckInVolunteer(ctx context.Context, id int64, assignment string) (*models.Volunteer, error)
	CheckOutVolunteer(ctx context.Context, id int64) (*models.Volunteer, error)
	ApproveVolunteer(ctx context.Context, id int64, approved bool) error

	GetIncidents(ctx context.Context) ([]models.Incident, error)
	GetIncidentCountsByLocation(ctx context.Context) ([]models.LocationCount, error)

	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationAsRead(ctx context.Context, id string) error

	// SetToken installs the bearer token attached to subsequent requests.
	// An empty token detaches authorization.
	SetToken(token string)

	Ping(ctx context.Context) error
	Close() error
}
