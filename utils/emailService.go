package utils

import (
	"fmt"
	"lms/config"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a single message through SendGrid. It either succeeds
// or fails; callers decide whether delivery is fire-and-forget.
func SendEmail(toEmail, toName, subject, plainBody, htmlBody string) error {
	from := mail.NewEmail("LMS", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainBody, htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

// SendCredentialEmail delivers the generated password to a newly registered
// student. Runs async; account creation has already committed by the time
// this is called.
func SendCredentialEmail(email, firstName, password string) {
	subject := "Your Student Account"
	plain := fmt.Sprintf(
		"Hello, %s!\n\nYour account has been created. You can now log in with your email address and the following password:\n\nPassword: %s\n\nPlease change your password after logging in for security reasons.",
		firstName, password,
	)
	html := fmt.Sprintf(`
		<p>Hello, %s!</p>
		<p>Your account has been created. You can now log in with your email address and the following password:</p>
		<p><strong>%s</strong></p>
		<p>Please change your password after logging in for security reasons.</p>
	`, firstName, password)

	go func() {
		if err := SendEmail(email, firstName, subject, plain, html); err != nil {
			log.Printf("Failed to deliver credentials to %s: %v", email, err)
		}
	}()
}
