package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

/// ValidGender reports whether g is a known gender value. Empty is allowed:
// the field is optional.
func ValidGender(g string) bool {
	return g == "" || g == GenderMale || g == GenderFemale || g == GenderOther
}

// User models a registered member of the campus community. Username and
// email are stored lower-cased and are each globally unique. PasswordDigest
// is never serialized.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	Role           string    `json:"role"`
	DisplayName    string    `json:"display_name,omitempty"`
	Faculty        string    `json:"faculty,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	StudentID      string    `json:"student_id,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserPatch describes a partial update to a user record. Nil fields are left
// untouched. PasswordDigest, when set, must already be hashed; the
// persistence layer never sees plaintext.
type UserPatch struct {
	Username       *string
	Email          *string
	PasswordDigest *string
	Role           *string
	DisplayName    *string
	Faculty        *string
	Gender         *string
	StudentID      *string
	ProfilePicture *string
}
