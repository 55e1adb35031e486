package domain

// Contact is an entry in the staff directory. Only Name, Faculty, and Role
// are required; the rest are optional reach-out channels.
type Contact struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Faculty        string `json:"faculty"`
	Role           string `json:"role"`
	Department     string `json:"department,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Facebook       string `json:"facebook,omitempty"`
	Line           string `json:"line,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}
