package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// executor defines the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type executor interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	GoogleLogin(ctx context.Context) error
	Me(ctx context.Context) error
	Search(ctx context.Context) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Show(ctx context.Context, arg string) error
	ToggleFavorite(ctx context.Context, arg string) error
	Favorites(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Logout(ctx context.Context) error
}

// root runs the interactive loop on stdin.
func (a *App) root(ctx context.Context) {
	printlnFn("Welcome to the RentIQ CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// runREPL reads a line, parses the first token as the command, and dispatches
// to the executor. Unknown commands are reported back. The loop exits on EOF
// or "exit"/"quit". Handler errors are printed here so the loop itself stays
// resilient; no failure ends the session.
func runREPL(ctx context.Context, a executor, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rentiq %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: search, next, prev, show <id>, fav <id>, favorites, me, profile, editprofile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, google, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "google":
			err = a.GoogleLogin(ctx)

		case "me":
			err = a.Me(ctx)

		case "s", "search":
			err = a.Search(ctx)

		case "n", "next":
			err = a.NextPage(ctx)

		case "p", "prev":
			err = a.PrevPage(ctx)

		case "show":
			err = a.Show(ctx, arg)

		case "fav":
			err = a.ToggleFavorite(ctx, arg)

		case "favorites":
			err = a.Favorites(ctx)

		case "profile":
			err = a.Profile(ctx)

		case "editprofile":
			err = a.EditProfile(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
