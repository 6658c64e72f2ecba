package domain

import "time"

// Account types stored on user documents.
const (
	UserTypeCustomer = "customer"
	UserTypeCoach    = "coach"
	UserTypeAdmin    = "admin"
)

// User is a stored account document. Coach-only fields stay empty for
// customers and admins.
type User struct {
	ID           string    `json:"id" firestore:"-"`
	UserName     string    `json:"user_name" firestore:"user_name"`
	Email        string    `json:"email" firestore:"email"`
	UserType     string    `json:"user_type" firestore:"user_type"`
	PasswordHash string    `json:"-" firestore:"password_hash"`
	CreatedAt    time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty" firestore:"updated_at,omitempty"`

	Specialization string   `json:"specialization,omitempty" firestore:"specialization,omitempty"`
	ProfilePicURL  string   `json:"profile_pic_url,omitempty" firestore:"profile_pic_url,omitempty"`
	Services       []string `json:"services,omitempty" firestore:"services,omitempty"`
}

// Session is an authenticated login session, serialized into the session
// store under its token.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}
