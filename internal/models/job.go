package models

// Job - вакансия. После публикации не редактируется и не удаляется.
type Job struct {
	BaseModel
	EmployerID     string `gorm:"index;not null" json:"employer_id"`
	Title          string `gorm:"not null" json:"title"`
	Description    string `gorm:"type:text;not null" json:"description"`
	Category       string `gorm:"not null" json:"category"`
	Location       string `gorm:"not null" json:"location"`
	SkillsRequired string `json:"skills_required"`
	SalaryMin      *int   `json:"salary_min,omitempty"`
	SalaryMax      *int   `json:"salary_max,omitempty"`

	Employer *EmployerProfile `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
}
