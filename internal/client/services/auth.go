package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/avelev/schoolguard/internal/client/api"
	"github.com/avelev/schoolguard/internal/client/models"
	"github.com/avelev/schoolguard/internal/client/session"
	"github.com/avelev/schoolguard/internal/logging"
)

// State is the auth gate's state. There are exactly two states; every
// protected view consults the current one before rendering.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// publicRoutes are viewable without authentication.
var publicRoutes = map[string]struct{}{
	"login":           {},
	"admin/login":     {},
	"signup":          {},
	"forgot-password": {},
}

// CanView is the routing decision function: pure in (state, route), no
// side effects. Protected routes render only in StateAuthenticated.
func CanView(s State, route string) bool {
	if _, ok := publicRoutes[strings.Trim(route, "/")]; ok {
		return true
	}
	return s == StateAuthenticated
}

// AuthService is the authentication gate for the admin console.
//
// Contract:
//   - Bootstrap: seed the gate from the persisted session, once at startup.
//   - Login/AdminLogin/Signup: validate locally, consult the attempt
//     limiter, then exchange credentials with the backend.
//   - Logout: clear the persisted session and return to StateAnonymous.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Bootstrap(ctx context.Context) error
	Login(ctx context.Context, form LoginForm) error
	AdminLogin(ctx context.Context, form LoginForm) error
	Signup(ctx context.Context, form SignupForm) error
	Logout(ctx context.Context) error
	State() State
	CurrentUser() *models.User
	Attempts() LoginAttempts
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote client
// and the local session store.
type authService struct {
	client api.Client
	store  session.Store
	logger logging.Logger
	now    func() time.Time

	mu       sync.Mutex
	state    State
	user     *models.User
	attempts LoginAttempts
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store. The gate starts Anonymous until Bootstrap runs.
func NewAuthService(client api.Client, store session.Store, logger logging.Logger) AuthService {
	return &authService{
		client: client,
		store:  store,
		logger: logger.With("component", "auth"),
		now:    time.Now,
		state:  StateAnonymous,
	}
}

// Bootstrap seeds the gate from the session store. Any non-empty stored
// token is sufficient to start Authenticated; no verification is
// performed beyond the store's optional expiry check.
func (a *authService) Bootstrap(ctx context.Context) error {
	sess, err := a.store.Load(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if sess.Active() {
		a.state = StateAuthenticated
		a.user = sess.User
		a.client.SetToken(sess.Token)
		a.logger.Info(ctx, "session restored")
	}
	return nil
}

func (a *authService) Login(ctx context.Context, form LoginForm) error {
	return a.login(ctx, form, false)
}

func (a *authService) AdminLogin(ctx context.Context, form LoginForm) error {
	return a.login(ctx, form, true)
}

func (a *authService) login(ctx context.Context, form LoginForm, admin bool) error {
	if err := checkForm(form); err != nil {
		return err
	}

	a.mu.Lock()
	locked, minutes := a.attempts.Locked(a.now())
	a.mu.Unlock()
	if locked {
		return &LockoutError{RetryInMinutes: minutes}
	}

	creds := api.Credentials{Email: form.Email, Password: form.Password}

	var res *api.AuthResult
	var err error
	if admin {
		res, err = a.client.AdminLogin(ctx, creds)
	} else {
		res, err = a.client.Login(ctx, creds)
	}
	if err != nil {
		a.recordFailure(ctx)
		return classifyLoginError(err)
	}

	a.completeAuth(ctx, res, form.Remember)
	return nil
}

// Signup creates an account. Mismatched passwords or missing consent
// fail locally before any network call is attempted. Signup failures do
// not count toward the login lockout.
func (a *authService) Signup(ctx context.Context, form SignupForm) error {
	if err := checkForm(form); err != nil {
		return err
	}

	req := api.SignupRequest{
		FullName:   form.FullName,
		Email:      form.Email,
		Phone:      form.Phone,
		Password:   form.Password,
		Role:       form.Role,
		AgreeTerms: form.AgreeTerms,
	}

	res, err := a.client.Signup(ctx, req)
	if err != nil {
		return err
	}

	a.completeAuth(ctx, res, form.Remember)
	return nil
}

// completeAuth flips the gate to Authenticated after a login/signup call
// resolved without error. The payload is deliberately not inspected for
// a success flag: "the call did not fail" is the product's established
// proof of authentication (an open question for the backend team, see
// DESIGN.md; tightening it would change user-visible behavior).
func (a *authService) completeAuth(ctx context.Context, res *api.AuthResult, remember bool) {
	a.mu.Lock()
	a.attempts = a.attempts.Next(true, a.now())
	a.state = StateAuthenticated
	a.user = res.User
	a.mu.Unlock()

	a.client.SetToken(res.Token)

	if remember {
		if res.Token == "" {
			a.logger.Warn(ctx, "no token in auth response, session not persisted")
			return
		}
		if err := a.store.Save(ctx, res.Token, res.User); err != nil {
			a.logger.Warn(ctx, "failed to persist session", "error", err)
		}
	}
}

func (a *authService) recordFailure(ctx context.Context) {
	a.mu.Lock()
	a.attempts = a.attempts.Next(false, a.now())
	failures := a.attempts.ConsecutiveFailures
	a.mu.Unlock()
	a.logger.Warn(ctx, "login failed", "consecutive_failures", failures)
}

// Logout clears the persisted session and returns the gate to Anonymous,
// regardless of prior state.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}

	a.mu.Lock()
	a.state = StateAnonymous
	a.user = nil
	a.mu.Unlock()

	a.client.SetToken("")
	a.logger.Info(ctx, "logged out")
	return nil
}

func (a *authService) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *authService) CurrentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *authService) Attempts() LoginAttempts {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.attempts
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// classifyLoginError maps a failed credential exchange to the message
// shown to the user.
func classifyLoginError(err error) error {
	switch api.StatusOf(err) {
	case http.StatusUnauthorized:
		return errors.New("Invalid email or password")
	case http.StatusForbidden:
		return errors.New("Access denied. Please contact an administrator.")
	case http.StatusNotFound:
		return errors.New("Account not found. Please check your credentials.")
	default:
		return err
	}
}
