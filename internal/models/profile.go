package models

// WorkerProfile - анкета рабочего (1:1 с User, role=worker).
// Создается пустой заглушкой при регистрации и дозаполняется позже.
type WorkerProfile struct {
	BaseModel
	UserID            string `gorm:"uniqueIndex;not null" json:"user_id"`
	Skills            string `json:"skills"`
	ExperienceYears   int    `gorm:"default:0" json:"experience_years"`
	PreferredLocation string `json:"preferred_location"`
}

// EmployerProfile - профиль компании работодателя (1:1 с User, role=employer).
type EmployerProfile struct {
	BaseModel
	UserID             string `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName        string `gorm:"not null" json:"company_name"`
	CompanyDescription string `gorm:"type:text" json:"company_description"`
	Location           string `json:"location"`
}
