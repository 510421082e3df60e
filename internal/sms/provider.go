package sms

import (
	"bluehire_backend/internal/logger"
)

// Provider определяет интерфейс доставки SMS.
// Боевой шлюз (Twilio и т.п.) сюда не входит - это внешний коллаборатор.
type Provider interface {
	// SendOTP доставляет одноразовый код на указанный номер
	SendOTP(phone, code string) error
}

// LogProvider - демо-реализация: код не отправляется,
// а печатается в лог (как в исходной системе).
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) SendOTP(phone, code string) error {
	logger.Info("[DEMO SMS] OTP code issued", "phone", phone, "code", code)
	return nil
}
