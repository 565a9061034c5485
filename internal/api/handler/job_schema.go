package handler

type createJobRequest struct {
	Title       string  `json:"title"       validate:"required,min=3,max=100"`
	Company     string  `json:"company"     validate:"required,min=3,max=100"`
	Location    string  `json:"location"    validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"required"`
	Category    *string `json:"category"`
}

// updateJobRequest is the explicit whitelist of mutable job fields.
// Absent fields are left unchanged; unknown fields are ignored.
type updateJobRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=3,max=100"`
	Company     *string `json:"company"     validate:"omitempty,min=3,max=100"`
	Location    *string `json:"location"    validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Category    *string `json:"category"`
}
