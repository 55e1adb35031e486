package handler

type signupRequest struct {
	Username    string `json:"username"     validate:"required,min=3,max=50"`
	Email       string `json:"email"        validate:"required,email,max=100"`
	Password    string `json:"password"     validate:"required,min=6,max=72"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
	Faculty     string `json:"faculty"      validate:"omitempty,max=100"`
	Gender      string `json:"gender"       validate:"omitempty,oneof=male female other"`
	StudentID   string `json:"student_id"   validate:"omitempty,max=50"`
}

// loginRequest accepts a username or an email in the identifier field. The
// response never reveals which of the two fields failed.
type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6,max=72"`
}

type loginResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type signupResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type messageResponse struct {
	Message string `json:"message"`
}
