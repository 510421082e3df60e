package models

type User struct {
	BaseModel
	Email             string   `gorm:"uniqueIndex;not null" json:"email"`
	Phone             *string  `gorm:"uniqueIndex" json:"phone,omitempty"`
	PasswordHash      string   `gorm:"not null" json:"-"`
	Role              UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Name              string   `gorm:"not null" json:"name"`
	PreferredLanguage string   `gorm:"type:varchar(10);default:'en'" json:"preferred_language"`

	// Relations
	WorkerProfile   *WorkerProfile   `gorm:"foreignKey:UserID" json:"worker_profile,omitempty"`
	EmployerProfile *EmployerProfile `gorm:"foreignKey:UserID" json:"employer_profile,omitempty"`
}
