package dto

type JobCreateRequest struct {
	CompanyID     uint   `json:"company_id" validate:"required"`
	Title         string `json:"title" validate:"required,min=1,max=255"`
	ShortDesc     string `json:"short_desc" validate:"required,min=1"`
	FullDesc      string `json:"full_desc"`
	Location      string `json:"location" validate:"max=255"`
	ProfileSought string `json:"profile_sought" validate:"max=255"`
	ContractType  string `json:"contract_type" validate:"max=64"`
	WorkMode      string `json:"work_mode" validate:"max=64"`
	SalaryMin     *int   `json:"salary_min"`
	SalaryMax     *int   `json:"salary_max"`
	Currency      string `json:"currency" validate:"max=8"`
	Tags          string `json:"tags"`
}
