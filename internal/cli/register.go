package cli

import (
	"context"
	"fmt"
)

func (a *App) register(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fullName, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	phone, err := GetSimpleText(a.reader, "Enter phone", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.vault.Register(ctx, userName, fullName, phone, email, password); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "User registered successfully")
}
