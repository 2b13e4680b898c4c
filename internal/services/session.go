package services

import "context"

// SessionFacade is the read-mostly query surface used by presentation-layer
// collaborators. It owns no state and delegates entirely to CredentialVault.
type SessionFacade struct {
	vault *CredentialVault
}

func NewSessionFacade(vault *CredentialVault) *SessionFacade {
	return &SessionFacade{vault: vault}
}

// IsLoggedIn reports whether the user has a live session.
func (f *SessionFacade) IsLoggedIn(ctx context.Context, username string) bool {
	return f.vault.IsLoggedIn(ctx, username)
}

// GetSession returns the current bearer token, if any.
func (f *SessionFacade) GetSession(ctx context.Context, username string) (string, bool) {
	return f.vault.CurrentToken(ctx, username)
}

// DeleteSession logs the user out, best-effort.
func (f *SessionFacade) DeleteSession(ctx context.Context, username string) {
	f.vault.Logout(ctx, username)
}
