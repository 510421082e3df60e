package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(to, subject, body string) error

	// SendWelcome отправляет приветственное письмо после регистрации
	SendWelcome(to, name string) error

	// SendApplicationReceived уведомляет работодателя о новом отклике
	SendApplicationReceived(to, jobTitle, workerName string) error
}
