package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/cataleon/cataleon/app/models"
)

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config MailConfig
}

func NewMailer(cfg MailConfig) *Mailer {
	return &Mailer{
		config: cfg,
	}
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {

	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msg string
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + htmlBody

	auth := smtp.PlainAuth(m.config.From, m.config.Username, m.config.Password, m.config.Host)

	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
	if err != nil {
		log.Printf("SendHTMLEmail: failed to send to %s: %v", to, err)
		return fmt.Errorf("failed to send HTML email: %w", err)
	}

	return nil
}

func BuildInquiryStatusEmailBody(businessName, customerName, productName string, status models.InquiryStatus) string {
	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>Update on your inquiry</title>
            <style>
                body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
                .container { max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
                .header { background-color: #f8f8f8; padding: 10px 0; text-align: center; border-bottom: 1px solid #ddd; }
                .content { padding: 20px; }
                .status { font-size: 1.2em; font-weight: bold; color: #007bff; }
                .footer { font-size: 0.8em; color: #777; text-align: center; margin-top: 20px; border-top: 1px solid #ddd; padding-top: 10px; }
            </style>
        </head>
        <body>
            <div class="container">
                <div class="header">
                    <h2>%s</h2>
                </div>
                <div class="content">
                    <p>Hello %s,</p>
                    <p>Your inquiry about <strong>%s</strong> has been updated to:</p>
                    <p class="status">%s</p>
                    <p>We will be in touch with the next steps.</p>
                </div>
                <div class="footer">
                    <p>Sent via Cataleon.</p>
                </div>
            </div>
        </body>
        </html>
    `, businessName, customerName, productName, status)
}

func BuildPendingRemindersEmailBody(businessName string, inquiries []models.Inquiry) string {
	rows := ""
	for _, inq := range inquiries {
		productName := ""
		if inq.Product != nil {
			productName = inq.Product.Name
		}
		rows += fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td></tr>", inq.CustomerName, productName, inq.CreatedAt.Format("02 Jan 2006"))
	}

	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>Pending inquiries reminder</title>
            <style>
                body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
                .container { max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
                table { width: 100%%; border-collapse: collapse; }
                th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
                th { background-color: #f8f8f8; }
            </style>
        </head>
        <body>
            <div class="container">
                <h2>%s: you have %d pending inquiries</h2>
                <table>
                    <tr><th>Customer</th><th>Product</th><th>Received</th></tr>
                    %s
                </table>
            </div>
        </body>
        </html>
    `, businessName, len(inquiries), rows)
}
