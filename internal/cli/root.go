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
		return fmt.Sprintf("(%s)", u.Name)
	}
	return "(anonymous)"
}

// Root prints the welcome banner and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to Society Marketplace CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
