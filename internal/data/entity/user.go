package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base         `bson:",inline"`
	Username     string   `db:"username" bson:"username"`
	Email        string   `db:"email" bson:"email"`
	PasswordHash string   `db:"password" bson:"password"`
	Phone        *string  `db:"phone" bson:"phone,omitempty"`
	Role         UserRole `db:"role" bson:"role"`
	IsActive     bool     `db:"is_active" bson:"is_active"`
}
