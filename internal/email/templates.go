package email

import "fmt"

// Письма собираются из простых строковых шаблонов.
// HTML-верстка и i18n здесь ни к чему - письма служебные.

func welcomeBody(name string) (subject, body string) {
	subject = "Welcome to BlueHire"
	body = fmt.Sprintf(
		"<p>Hi %s,</p><p>Your BlueHire account has been created. You can now log in and complete your profile.</p>",
		name,
	)
	return subject, body
}

func applicationReceivedBody(jobTitle, workerName string) (subject, body string) {
	subject = fmt.Sprintf("New application: %s", jobTitle)
	body = fmt.Sprintf(
		"<p>%s has applied for your job posting <b>%s</b>.</p><p>Log in to review the application.</p>",
		workerName, jobTitle,
	)
	return subject, body
}
