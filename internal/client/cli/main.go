package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Main() {
	fmt.Fprintln(a.out, "Property assistant CLI (type 'help' for commands)")
	ctx := context.Background()

	for {
		fmt.Fprintf(a.out, "assistant %s > ", a.promptName())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: me, refresh, chat <text>, conversations, documents, bills, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}

		case "register":
			a.runCommand(ctx, a.Register)
		case "login":
			a.runCommand(ctx, a.Login)
		case "logout":
			a.Logout()
		case "me":
			a.Me()
		case "refresh":
			a.sessions.RefreshProfile(ctx)
			a.Me()
		case "chat":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: chat <message>")
				continue
			}
			a.runCommand(ctx, func(ctx context.Context) error {
				return a.Chat(ctx, strings.Join(args, " "))
			})
		case "conversations":
			a.runCommand(ctx, a.Conversations)
		case "documents":
			a.runCommand(ctx, a.Documents)
		case "bills":
			a.runCommand(ctx, a.Bills)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// runCommand executes a command and prints its error, keeping the REPL
// alive; the pipeline has already shown any user-facing notification.
func (a *App) runCommand(ctx context.Context, fn func(ctx context.Context) error) {
	if err := fn(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
	}
}
