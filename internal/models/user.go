package models

// User represents an account on the blogging site. The email is the
// identity key: login and blog ownership both go through it, and no
// separate numeric ID is used by any business logic.
//
// The password is stored and compared verbatim. Hashing it would change
// the login contract (exact email+password lookup, full record echoed
// back to the client), so the weakness is kept on purpose.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password string `json:"password" gorm:"type:varchar(255)"`
}
