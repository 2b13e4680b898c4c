// Package models defines the records persisted through the secure store.
// All transfer between layers is by value; no stored secret is shared by
// reference.
package models

// UserRecord is the stored form of a registered identity. The username is
// already normalized when the record is built. Serialized as JSON including
// the password hash; never handed to callers outside the vault.
type UserRecord struct {
	Username     string `json:"username"`
	FullName     string `json:"fullname"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	CreatedAt    int64  `json:"created_at"`
}

// UserView is the caller-facing projection of a UserRecord. It deliberately
// has no hash field, so a stored hash cannot leak through serialization.
type UserView struct {
	Username  string `json:"username"`
	FullName  string `json:"fullname"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}

// View strips authentication material from the record.
func (u UserRecord) View() UserView {
	return UserView{
		Username:  u.Username,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
