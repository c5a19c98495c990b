package models

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext; SessionID is the opaque token of the most recent login and is
// empty until the first one.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	SessionID string `json:"-"`
	CreatedAt string `json:"created_at"`
}
