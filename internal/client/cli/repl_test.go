package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                    { return s.loggedIn }
func (s *stubExec) Login(context.Context) error         { return s.record("login") }
func (s *stubExec) AdminLogin(context.Context) error    { return s.record("admin") }
func (s *stubExec) Signup(context.Context) error        { return s.record("signup") }
func (s *stubExec) Logout(context.Context) error        { return s.record("logout") }
func (s *stubExec) Dashboard(context.Context) error     { return s.record("dashboard") }
func (s *stubExec) Watch(context.Context) error         { return s.record("watch") }
func (s *stubExec) Stats(context.Context) error         { return s.record("stats") }
func (s *stubExec) Volunteers(context.Context) error    { return s.record("volunteers") }
func (s *stubExec) AddVolunteer(context.Context) error  { return s.record("add") }
func (s *stubExec) CheckIn(context.Context) error       { return s.record("checkin") }
func (s *stubExec) CheckOut(context.Context) error      { return s.record("checkout") }
func (s *stubExec) Approve(context.Context) error       { return s.record("approve") }
func (s *stubExec) Incidents(context.Context) error     { return s.record("incidents") }
func (s *stubExec) Notifications(context.Context) error { return s.record("notifications") }
func (s *stubExec) MarkRead(context.Context) error      { return s.record("read") }

func captureOutput(t *testing.T) (*[]string, func()) {
	t.Helper()
	orig := printlnFn
	lines := &[]string{}
	printlnFn = func(args ...any) (int, error) {
		*lines = append(*lines, fmt.Sprintln(args...))
		return 0, nil
	}
	return lines, func() { printlnFn = orig }
}

func runWith(t *testing.T, s *stubExec, input string) []string {
	t.Helper()
	lines, restore := captureOutput(t)
	defer restore()

	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), s, func() string { return "" }, scanner)
	return *lines
}

func TestREPL_DispatchesWhenLoggedIn(t *testing.T) {
	s := &stubExec{loggedIn: true}
	runWith(t, s, "dashboard\nvolunteers\nnotifications\nread\nlogout\nexit\n")

	want := []string{"dashboard", "volunteers", "notifications", "read", "logout"}
	if len(s.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", s.calls, want)
	}
	for i := range want {
		if s.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", s.calls, want)
		}
	}
}

func TestREPL_ProtectedCommandsRefusedWhenAnonymous(t *testing.T) {
	s := &stubExec{loggedIn: false}
	lines := runWith(t, s, "dashboard\napprove\nexit\n")

	if len(s.calls) != 0 {
		t.Fatalf("no handler should run while anonymous, got %v", s.calls)
	}

	refused := 0
	for _, l := range lines {
		if strings.Contains(l, "Please login first.") {
			refused++
		}
	}
	if refused != 2 {
		t.Fatalf("want 2 refusals, got %d (output %v)", refused, lines)
	}
}

func TestREPL_AuthCommandsAvailableWhenAnonymous(t *testing.T) {
	s := &stubExec{loggedIn: false}
	runWith(t, s, "login\nadmin\nsignup\nexit\n")

	want := []string{"login", "admin", "signup"}
	if len(s.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", s.calls, want)
	}
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	s := &stubExec{loggedIn: true}
	lines := runWith(t, s, "bogus\nexit\n")

	found := false
	for _, l := range lines {
		if strings.Contains(l, "Unknown command:") {
			found = true
		}
	}
	if !found {
		t.Fatalf("unknown command not reported, output %v", lines)
	}
}

func TestREPL_HelpVariesWithAuthState(t *testing.T) {
	anon := runWith(t, &stubExec{loggedIn: false}, "help\nexit\n")
	authed := runWith(t, &stubExec{loggedIn: true}, "help\nexit\n")

	if !strings.Contains(strings.Join(anon, ""), "login, admin, signup") {
		t.Fatalf("anonymous help wrong: %v", anon)
	}
	if !strings.Contains(strings.Join(authed, ""), "dashboard") {
		t.Fatalf("authenticated help wrong: %v", authed)
	}
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{loggedIn: true}
	runWith(t, s, "dashboard\n")

	if len(s.calls) != 1 {
		t.Fatalf("calls = %v", s.calls)
	}
}
