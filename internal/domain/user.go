package domain

// User is an admin-panel account. Hash is the bcrypt password hash and
// never leaves the server; Role must be ADMIN to pass the authz
// middleware.
type User struct {
	ID    string `db:"id" json:"id"`
	Email string `db:"email" json:"email"`
	Name  string `db:"name" json:"name"`
	Hash  string `db:"password_hash" json:"-"`
	Role  string `db:"role" json:"role"`
}
