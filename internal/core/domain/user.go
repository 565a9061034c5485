package domain

import (
	"strings"
	"time"
)

// viewTimeLayout is the timestamp format exposed to clients in view models.
const viewTimeLayout = "2006-01-02 15:04:05"

// User models a registered account. Email and username carry unique
// indexes so concurrent registrations cannot both succeed.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"size:255;not null"`
	OtherNames   string `gorm:"size:255"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	Username     string `gorm:"size:32;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the first name and other names for display.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.OtherNames)
}

// UserView is the public subset of a user returned to clients.
// The password hash is never serialized. OtherNames is a pointer so an
// absent value renders as null rather than an empty string.
type UserView struct {
	ID          uint    `json:"id"`
	FirstName   string  `json:"first_name"`
	OtherNames  *string `json:"other_names"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	DateCreated string  `json:"date_created"`
}

// View returns the client-facing representation of the user.
func (u *User) View() UserView {
	var otherNames *string
	if u.OtherNames != "" {
		otherNames = &u.OtherNames
	}
	return UserView{
		ID:          u.ID,
		FirstName:   u.FirstName,
		OtherNames:  otherNames,
		Email:       u.Email,
		Username:    u.Username,
		DateCreated: u.CreatedAt.Format(viewTimeLayout),
	}
}
