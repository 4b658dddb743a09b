package models

import "time"

// User is the identity returned by GET /auth/me.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  *string   `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Token is the response of the login/register/google endpoints.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Profile holds the editable profile fields of the current user.
// DateOfBirth travels as an ISO-8601 timestamp; services truncate it to a
// date-only value before handing it to the editing flow.
type Profile struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Address     *string    `json:"address,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ProfileUpdate is the PUT /users/profile request body. Only set fields are
// transmitted; the server leaves the rest unchanged.
type ProfileUpdate struct {
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Address     *string    `json:"address,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
}
