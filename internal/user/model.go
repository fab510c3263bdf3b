package user

import "time"

// User is a staff login. Role gates mutating routes: admins manage plans and
// staff; staff record payments and edit members.
type User struct {
	ID           int       `db:"id" json:"id"`
	GymID        int       `db:"gym_id" json:"gym_id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest signs up a gym owner: it creates the gym (tenant) and its
// first admin user in one go.
type RegisterRequest struct {
	GymName  string `json:"gym_name" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}
