package cli

import (
	"context"
	"fmt"
)

func (a *App) login(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	view, err := a.vault.Authenticate(ctx, userName, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return
	}

	a.userName = view.Username
	fmt.Fprintf(a.out, "Welcome, %s!\n", view.FullName)
}
