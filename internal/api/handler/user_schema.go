package handler

// profileUpdateRequest uses pointers so "absent" and "set to empty" are
// distinguishable; only present fields are applied.
type profileUpdateRequest struct {
	Username       *string `json:"username"        validate:"omitempty,min=3,max=50"`
	Email          *string `json:"email"           validate:"omitempty,email,max=100"`
	Password       *string `json:"password"        validate:"omitempty,min=6,max=72"`
	DisplayName    *string `json:"display_name"    validate:"omitempty,max=100"`
	Faculty        *string `json:"faculty"         validate:"omitempty,max=100"`
	Gender         *string `json:"gender"          validate:"omitempty,oneof=male female other"`
	StudentID      *string `json:"student_id"      validate:"omitempty,max=50"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,max=500"`
}

type adminCreateUserRequest struct {
	Username    string `json:"username"     validate:"required,min=3,max=50"`
	Email       string `json:"email"        validate:"required,email,max=100"`
	Password    string `json:"password"     validate:"required,min=6,max=72"`
	Role        string `json:"role"         validate:"omitempty,oneof=user admin"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
	Faculty     string `json:"faculty"      validate:"omitempty,max=100"`
	Gender      string `json:"gender"       validate:"omitempty,oneof=male female other"`
	StudentID   string `json:"student_id"   validate:"omitempty,max=50"`
}
