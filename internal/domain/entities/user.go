package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserType tags what an account registered as. Free-form on purpose: the
// frontend offers buyer/seller/agent but the backend only stores the tag.
type UserType string

const (
	UserTypeBuyer  UserType = "buyer"
	UserTypeSeller UserType = "seller"
	UserTypeAgent  UserType = "agent"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	UserType     UserType  `json:"userType"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FullName returns the display name denormalized onto listings
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RegisterInput represents input for registration
type RegisterInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	UserType  string `json:"userType" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful register/login response
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}
