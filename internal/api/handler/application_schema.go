package handler

type applyRequest struct {
	CoverLetter string `json:"cover_letter"`
}
