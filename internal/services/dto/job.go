package dto

type CreateJobRequest struct {
	Title          string `form:"title" json:"title" validate:"required,max=200"`
	Description    string `form:"description" json:"description" validate:"required"`
	Category       string `form:"category" json:"category" validate:"required,max=100"`
	Location       string `form:"location" json:"location" validate:"required,max=200"`
	SkillsRequired string `form:"skills_required" json:"skills_required" validate:"omitempty,max=255"`
	SalaryMin      *int   `form:"salary_min" json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *int   `form:"salary_max" json:"salary_max" validate:"omitempty,min=0"`
}

// JobSearchQuery - query-параметры поиска, все опциональны.
type JobSearchQuery struct {
	Query    string `form:"q" json:"q"`
	Location string `form:"location" json:"location"`
	Category string `form:"category" json:"category"`
}
