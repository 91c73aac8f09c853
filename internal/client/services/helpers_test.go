package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/avelev/schoolguard/internal/client/api"
	"github.com/avelev/schoolguard/internal/client/models"
	"github.com/avelev/schoolguard/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements api.Client for unit tests. Every operation
// counts its calls so tests can assert that no network traffic happened.
type fakeClient struct {
	mu sync.Mutex

	LoginRet      *api.AuthResult
	LoginErr      error
	LoginCalls    int
	LastLoginReq  api.Credentials
	AdminLoginRet *api.AuthResult
	AdminLoginErr error
	AdminCalls    int

	SignupRet   *api.AuthResult
	SignupErr   error
	SignupCalls int

	VolunteersRet   []models.Volunteer
	VolunteersErr   error
	VolunteerCalls  int
	IncidentsRet    []models.Incident
	IncidentsErr    error
	IncidentCalls   int
	LocationsRet    []models.LocationCount
	LocationsErr    error
	LocationCalls   int
	CreateRet       *models.Volunteer
	CreateErr       error
	CreateCalls     int
	CheckInRet      *models.Volunteer
	CheckInErr      error
	CheckOutRet     *models.Volunteer
	CheckOutErr     error
	ApproveErrs     map[int64]error
	ApprovedIDs     []int64
	StatsRet        *models.DashboardStats
	StatsErr        error
	NotifsRet       []models.Notification
	NotifsErr       error
	MarkedRead      []string
	MarkReadErr     error
	Token           string
	PingErr         error
	CloseErr        error
	CloseCalls      int
	SetTokenHistory []string
}

func (f *fakeClient) Login(ctx context.Context, creds api.Credentials) (*api.AuthResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastLoginReq = creds
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) AdminLogin(ctx context.Context, creds api.Credentials) (*api.AuthResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AdminCalls++
	return f.AdminLoginRet, f.AdminLoginErr
}

func (f *fakeClient) Signup(ctx context.Context, req api.SignupRequest) (*api.AuthResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignupCalls++
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) GetVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.VolunteerCalls++
	return f.VolunteersRet, f.VolunteersErr
}

func (f *fakeClient) CreateVolunteer(ctx context.Context, req api.CreateVolunteerRequest) (*models.Volunteer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) CheckInVolunteer(ctx context.Context, id int64, assignment string) (*models.Volunteer, error) {
	return f.CheckInRet, f.CheckInErr
}

func (f *fakeClient) CheckOutVolunteer(ctx context.Context, id int64) (*models.Volunteer, error) {
	return f.CheckOutRet, f.CheckOutErr
}

func (f *fakeClient) ApproveVolunteer(ctx context.Context, id int64, approved bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.ApproveErrs[id]; ok && err != nil {
		return err
	}
	f.ApprovedIDs = append(f.ApprovedIDs, id)
	return nil
}

func (f *fakeClient) GetIncidents(ctx context.Context) ([]models.Incident, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.IncidentCalls++
	return f.IncidentsRet, f.IncidentsErr
}

func (f *fakeClient) GetIncidentCountsByLocation(ctx context.Context) ([]models.LocationCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LocationCalls++
	return f.LocationsRet, f.LocationsErr
}

func (f *fakeClient) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return f.StatsRet, f.StatsErr
}

func (f *fakeClient) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	return f.NotifsRet, f.NotifsErr
}

func (f *fakeClient) MarkNotificationAsRead(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.MarkReadErr != nil {
		return f.MarkReadErr
	}
	f.MarkedRead = append(f.MarkedRead, id)
	return nil
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Token = token
	f.SetTokenHistory = append(f.SetTokenHistory, token)
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Close() error {
	f.CloseCalls++
	return f.CloseErr
}

func (f *fakeClient) loginCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.LoginCalls
}

// memStore implements session.Store in memory.
type memStore struct {
	Token   string
	User    *models.User
	SaveErr error
	LoadErr error
	Cleared bool
}

func (m *memStore) Load(ctx context.Context) (models.Session, error) {
	if m.LoadErr != nil {
		return models.Session{}, m.LoadErr
	}
	return models.Session{Token: m.Token, User: m.User}, nil
}

func (m *memStore) Save(ctx context.Context, token string, user *models.User) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Token = token
	m.User = user
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.Token = ""
	m.User = nil
	m.Cleared = true
	return nil
}
