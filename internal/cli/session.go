package cli

import (
	"context"
	"fmt"
)

// currentUser resolves the username a session command applies to: the
// logged-in user when known, otherwise prompted.
func (a *App) currentUser() (string, error) {
	if a.userName != "" {
		return a.userName, nil
	}
	return GetSimpleText(a.reader, "Enter username", a.out)
}

func (a *App) status(ctx context.Context) {
	userName, err := a.currentUser()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if a.sessions.IsLoggedIn(ctx, userName) {
		fmt.Fprintf(a.out, "%s is logged in\n", userName)
	} else {
		fmt.Fprintf(a.out, "%s is not logged in\n", userName)
	}
}

func (a *App) showToken(ctx context.Context) {
	userName, err := a.currentUser()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	token, ok := a.sessions.GetSession(ctx, userName)
	if !ok {
		fmt.Fprintln(a.out, "No valid session")
		return
	}
	fmt.Fprintf(a.out, "Session token: %s\n", token)
}

func (a *App) logout(ctx context.Context) {
	userName, err := a.currentUser()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.sessions.DeleteSession(ctx, userName)
	if userName == a.userName {
		a.userName = ""
	}
	fmt.Fprintln(a.out, "Logged out")
}
