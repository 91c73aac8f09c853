package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if u := a.auth.CurrentUser(); u != nil {
		s := u.Email
		if u.Role != "" {
			s = s + " " + u.Role
		}
		return fmt.Sprintf("(%s)", s)
	}
	return "(anonymous)"
}

// Root runs the interactive console loop on stdin until the user exits.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to SchoolGuard admin console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
