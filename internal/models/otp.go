package models

// OTP - одноразовый код входа по телефону.
// На один номер может существовать несколько незакрытых кодов,
// проверка берет самый свежий неиспользованный.
type OTP struct {
	BaseModel
	Phone  string `gorm:"index;not null" json:"phone"`
	Code   string `gorm:"type:varchar(6);not null" json:"-"`
	IsUsed bool   `gorm:"default:false" json:"is_used"`
}

func (OTP) TableName() string {
	return "otps"
}
