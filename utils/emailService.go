package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"wrwk/config"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: We Read With Kids <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #2E6B4F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #333333; line-height: 1.6; }
			.footer { padding: 20px; text-align: center; color: #999999; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">We Read With Kids &middot; Happy reading!</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered parent or educator
func SendWelcomeEmail(email, firstName string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to We Read With Kids! Your account is ready.</p>
		<p>Create a profile for your young reader and we will put together a
		personalized learning path to get them started.</p>
	`, firstName)

	return SendEmail([]string{email}, "Welcome to We Read With Kids", getEmailTemplate("Welcome!", body))
}

// SendChallengeEndingReminder nudges a participant before a challenge closes
func SendChallengeEndingReminder(email, firstName, challengeTitle string, daysLeft int) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>The <b>%s</b> challenge ends in %d day(s). There is still time to
		log some reading and reach the goal!</p>
	`, firstName, challengeTitle, daysLeft)

	return SendEmail([]string{email}, "Reading challenge ending soon", getEmailTemplate("Keep Reading!", body))
}
