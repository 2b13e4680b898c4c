package cli

import (
	"context"
	"encoding/json"
	"fmt"
)

func (a *App) saveToken(ctx context.Context) {

	service, err := GetSimpleText(a.reader, "Enter service name (e.g. GMeet)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	raw, err := GetMultiline(a.reader, "Paste token payload JSON", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		fmt.Fprintf(a.out, "Invalid JSON: %v\n", err)
		return
	}

	answer, err := GetSimpleText(a.reader, "Encrypt payload? (yes/no)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	record, err := a.tokens.SaveToken(ctx, service, payload, a.userName, answer == "yes")
	if err != nil {
		fmt.Fprintf(a.out, "Token save failed: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Token saved: id=%s encrypted=%t\n", record.ID, record.Encrypted)
}
