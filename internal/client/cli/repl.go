package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	AdminLogin(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Watch(ctx context.Context) error
	Stats(ctx context.Context) error
	Volunteers(ctx context.Context) error
	AddVolunteer(ctx context.Context) error
	CheckIn(ctx context.Context) error
	CheckOut(ctx context.Context) error
	Approve(ctx context.Context) error
	Incidents(ctx context.Context) error
	Notifications(ctx context.Context) error
	MarkRead(ctx context.Context) error
}

// protectedCommands require an authenticated session. The REPL refuses
// them while anonymous instead of letting the backend reject the call.
var protectedCommands = map[string]struct{}{
	"dashboard": {}, "watch": {}, "stats": {},
	"volunteers": {}, "add": {}, "checkin": {}, "checkout": {}, "approve": {},
	"incidents": {}, "notifications": {}, "read": {}, "logout": {},
}

// runREPL starts a simple read–eval–print loop for the admin console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - admin          — authenticate against the admin endpoint
//	  - signup         — create an account
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - dashboard      — print the current dashboard snapshot
//	  - watch          — poll the dashboard until Enter is pressed
//	  - stats          — print the backend's precomputed stats
//	  - volunteers     — list the volunteer roster
//	  - add            — register a new volunteer
//	  - checkin        — check a volunteer in (interactive prompts)
//	  - checkout       — check a volunteer out
//	  - approve        — approve or reject selected volunteers
//	  - incidents      — list incidents
//	  - notifications  — list notifications
//	  - read           — mark a notification as read
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sg> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if _, protected := protectedCommands[cmd]; protected && !a.isLoggedIn() {
			printlnFn("Please login first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, watch, stats, volunteers, add, checkin, checkout, approve, incidents, notifications, read, logout, exit")
			} else {
				printlnFn("Available commands: login, admin, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "admin":
			_ = a.AdminLogin(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "watch":
			_ = a.Watch(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "volunteers":
			_ = a.Volunteers(ctx)

		case "add":
			_ = a.AddVolunteer(ctx)

		case "checkin":
			_ = a.CheckIn(ctx)

		case "checkout":
			_ = a.CheckOut(ctx)

		case "approve":
			_ = a.Approve(ctx)

		case "incidents":
			_ = a.Incidents(ctx)

		case "notifications":
			_ = a.Notifications(ctx)

		case "read":
			_ = a.MarkRead(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
