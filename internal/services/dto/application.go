package dto

type ApplicationCreateRequest struct {
	JobID   uint   `json:"job_id" validate:"required"`
	Name    string `json:"name" validate:"max=255"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"max=64"`
	Message string `json:"message"`
	CVURL   string `json:"cv_url" validate:"max=512"`
	Status  string `json:"status" validate:"max=32"`
}

type ApplicationCreatedResponse struct {
	ID     uint   `json:"id"`
	JobID  uint   `json:"job_id"`
	Status string `json:"status"`
}

// CandidateFilters is the facet payload backing the search UI.
type CandidateFilters struct {
	Skills          []string `json:"skills"`
	Languages       []string `json:"languages"`
	Diplomas        []string `json:"diplomas"`
	ExperienceYears []int    `json:"experience_years"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
