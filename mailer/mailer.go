package mailer

import (
	"fmt"
	"net/smtp"
)

type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	Host string
	Port string
	From string
	User string
	Pass string
}

func NewSMTPMailer(host, port, from, user, pass string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, From: from, User: user, Pass: pass}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := "From: " + m.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n" +
		body

	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	return smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg))
}
