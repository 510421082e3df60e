package email

import (
	"sync"

	"bluehire_backend/internal/logger"
)

// MockProvider пишет письма в лог вместо отправки.
// Используется в development-режиме и в тестах.
type MockProvider struct {
	mu   sync.Mutex
	sent []MockMessage
}

type MockMessage struct {
	To      string
	Subject string
	Body    string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(to, subject, body string) error {
	p.mu.Lock()
	p.sent = append(p.sent, MockMessage{To: to, Subject: subject, Body: body})
	p.mu.Unlock()

	logger.Info("[MOCK EMAIL]", "to", to, "subject", subject)
	return nil
}

func (p *MockProvider) SendWelcome(to, name string) error {
	subject, body := welcomeBody(name)
	return p.Send(to, subject, body)
}

func (p *MockProvider) SendApplicationReceived(to, jobTitle, workerName string) error {
	subject, body := applicationReceivedBody(jobTitle, workerName)
	return p.Send(to, subject, body)
}

// Sent возвращает копию отправленных сообщений (для проверок в тестах).
func (p *MockProvider) Sent() []MockMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]MockMessage, len(p.sent))
	copy(out, p.sent)
	return out
}
