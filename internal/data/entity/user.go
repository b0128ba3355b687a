package entity

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleIncubated UserRole = "incubated"
	RoleExternal  UserRole = "external"
)

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	StartupName  string   `db:"startup_name"`
	Role         UserRole `db:"role"`
}
