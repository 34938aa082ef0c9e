package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Quiz(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Resources(ctx context.Context) error
	SaveResource(ctx context.Context, arg string) error
	RemoveResource(ctx context.Context, arg string) error
}

// runREPL starts the portal's read-eval-print loop.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Logged out, the commands are register, login, resources, exit. Logged
// in: quiz, dashboard, resources, save <id>, remove <id>, logout, exit.
//
// Errors from command handlers are ignored here; handlers report their own
// failures through the notification sink. This keeps the loop resilient
// and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		status := statusFn()
		if status != "" {
			status = "(" + status + ") "
		}
		printlnFn(fmt.Sprintf("caprep %s> ", status))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: quiz, dashboard, resources, save <id>, remove <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, resources, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "quiz":
			_ = a.Quiz(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "resources":
			_ = a.Resources(ctx)

		case "save":
			if len(args) == 0 {
				printlnFn("Usage: save <id>")
				continue
			}
			_ = a.SaveResource(ctx, args[0])

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <id>")
				continue
			}
			_ = a.RemoveResource(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
