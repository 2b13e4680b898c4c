package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Root runs the command loop until exit or EOF.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Sentinel vault CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "sentinel %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			fmt.Fprintln(a.out, "Available commands: register, login, status, token, logout, deluser, savetoken, exit")
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "status":
			a.status(ctx)
		case "token":
			a.showToken(ctx)
		case "logout":
			a.logout(ctx)
		case "deluser":
			a.deleteUser(ctx)
		case "savetoken":
			a.saveToken(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintf(a.out, "Unknown command: %s\n", parts[0])
		}
	}
}
