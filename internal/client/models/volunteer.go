// Package models defines client-side data models for the schoolguard
// admin console: wire types owned by the backend (volunteers, incidents,
// notifications) and locally derived or persisted records (session,
// dashboard snapshot).
package models

// Volunteer lifecycle status.
const (
	VolunteerActive          = "active"
	VolunteerPendingApproval = "pending_approval"
	VolunteerInactive        = "inactive"
)

// Background check status.
const (
	BackgroundCheckCompleted = "completed"
	BackgroundCheckPending   = "pending"
	BackgroundCheckExpired   = "expired"
)

// Volunteer is a backend-owned record; the client holds a cached,
// possibly stale copy per fetch cycle.
type Volunteer struct {
	ID                ID       `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Role              string   `json:"role"`
	Status            string   `json:"status"`
	BackgroundCheck   string   `json:"backgroundCheck"`
	HoursThisMonth    float64  `json:"hoursThisMonth"`
	TotalHours        float64  `json:"totalHours"`
	JoinDate          string   `json:"joinDate"`
	LastVisit         string   `json:"lastVisit,omitempty"`
	Schedule          string   `json:"schedule"`
	EmergencyContact  string   `json:"emergencyContact"`
	Skills            []string `json:"skills"`
	IsCheckedIn       bool     `json:"isCheckedIn"`
	CheckInTime       string   `json:"checkInTime,omitempty"`
	CurrentAssignment string   `json:"currentAssignment,omitempty"`
}
