package cli

import (
	"context"
	"fmt"
)

func (a *App) deleteUser(ctx context.Context) {
	userName, err := a.currentUser()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete user %q and their session? (yes/no)", userName), a.out)
	if err != nil || confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return
	}

	a.vault.DeleteUser(ctx, userName)
	if userName == a.userName {
		a.userName = ""
	}
	fmt.Fprintln(a.out, "User deleted")
}
