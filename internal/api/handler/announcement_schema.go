package handler

type announcementRequest struct {
	Title      string `json:"title"       validate:"required,min=5,max=200"`
	Content    string `json:"content"     validate:"required,min=10"`
	CoverImage string `json:"cover_image" validate:"omitempty,max=500"`
}
