package entity

const RoleAdmin = "ADMIN"

// User is a minimal account record. The checkout workflow looks up the
// admin user's email as one of its notification targets.
type User struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Role  string `db:"role" json:"role"`
}
