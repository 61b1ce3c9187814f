package models

import "time"

// UserRole distinguishes buyers from sellers
type UserRole string

const (
	RoleBuyer  UserRole = "buyer"
	RoleSeller UserRole = "seller"
)

// Valid reports whether the role is one of the accepted values
func (r UserRole) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// User represents a registered account. The password is stored only as a
// bcrypt hash; neither it nor the current refresh token is ever serialized.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"not null" json:"phone"`
	Password     string    `gorm:"not null" json:"-"`
	Role         UserRole  `gorm:"not null" json:"role"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
