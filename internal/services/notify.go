package services

import (
	"fmt"
	"log"

	"github.com/rahulkure2004/rahul-portfolio/internal/domain"
	"github.com/rahulkure2004/rahul-portfolio/internal/metrics"
)

// Notifier receives inquiry lifecycle events. Every delivery is best-effort:
// failures are logged and never reach the caller.
type Notifier interface {
	InquiryReceived(inq *domain.Inquiry)
	StatusChanged(inq *domain.Inquiry, newStatus string)
}

// Dispatcher fans an inquiry event out to the admin alert email, the
// submitter acknowledgment email and the optional chat alert. The channels
// are independent: one failing never stops the others.
type Dispatcher struct {
	email      EmailSender
	chat       ChatSender
	adminEmail string
}

// NewDispatcher creates a notification dispatcher
func NewDispatcher(email EmailSender, chat ChatSender, adminEmail string) *Dispatcher {
	return &Dispatcher{
		email:      email,
		chat:       chat,
		adminEmail: adminEmail,
	}
}

// InquiryReceived notifies all channels about a new inquiry
func (d *Dispatcher) InquiryReceived(inq *domain.Inquiry) {
	d.sendAdminAlert(inq)
	d.sendAcknowledgment(inq)
	d.sendChatAlert(inq)
}

// StatusChanged notifies the submitter that their inquiry moved to newStatus
func (d *Dispatcher) StatusChanged(inq *domain.Inquiry, newStatus string) {
	subject := "Your Inquiry Status Has Been Updated"
	htmlBody := fmt.Sprintf(`<div style="font-family: sans-serif; line-height: 1.6; color: #333;">
    <p>Hi <strong>%s</strong>,</p>
    <p>Your project inquiry status has been updated to:</p>
    <p style="font-size: 1.2em; font-weight: bold; color: #10b981;">%s</p>
    <p>We will reach out to you soon if required.</p>
    <br/>
    <p>Thank you,<br/><strong>Rahul Kure</strong></p>
</div>`, inq.FullName, newStatus)
	textBody := fmt.Sprintf("Hi %s,\n\nYour project inquiry status has been updated to: %s\n\nWe will reach out to you soon if required.\n\nThank you,\nRahul Kure", inq.FullName, newStatus)

	if err := d.email.SendHTMLEmail(inq.Email, subject, htmlBody, textBody); err != nil {
		log.Printf("[NOTIFY] Status update email failed for inquiry id=%d: %v", inq.ID, err)
		metrics.RecordNotification("status_email", false)
		return
	}
	metrics.RecordNotification("status_email", true)
}

// sendAdminAlert emails a summary of the inquiry to the configured admin
// address.
func (d *Dispatcher) sendAdminAlert(inq *domain.Inquiry) {
	if d.adminEmail == "" {
		log.Printf("[NOTIFY] No admin email configured, skipping admin alert for inquiry id=%d", inq.ID)
		return
	}

	subject := "New Portfolio Inquiry Received"
	htmlBody := fmt.Sprintf(`<h3>New Inquiry</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Project Type:</strong> %s</p>
<p><strong>Budget:</strong> %s</p>
<p><strong>Deadline:</strong> %s</p>
<p><strong>Description:</strong> %s</p>
<p><strong>Time:</strong> %s</p>`,
		inq.FullName, inq.Email, orNA(inq.Phone), orNA(inq.ProjectType),
		orNA(inq.BudgetRange), orNA(inq.Deadline), inq.Description,
		inq.CreatedAt.Format("January 2, 2006 at 3:04 PM"))
	textBody := fmt.Sprintf("New Inquiry\n\nName: %s\nEmail: %s\nPhone: %s\nProject Type: %s\nBudget: %s\nDeadline: %s\n\nDescription:\n%s\n\nInquiry ID: #%d",
		inq.FullName, inq.Email, orNA(inq.Phone), orNA(inq.ProjectType),
		orNA(inq.BudgetRange), orNA(inq.Deadline), inq.Description, inq.ID)

	if err := d.email.SendHTMLEmail(d.adminEmail, subject, htmlBody, textBody); err != nil {
		log.Printf("[NOTIFY] Admin alert email failed for inquiry id=%d: %v", inq.ID, err)
		metrics.RecordNotification("admin_email", false)
		return
	}
	log.Printf("[NOTIFY] Admin alert email sent for inquiry id=%d", inq.ID)
	metrics.RecordNotification("admin_email", true)
}

// sendAcknowledgment emails the submitter confirming receipt.
func (d *Dispatcher) sendAcknowledgment(inq *domain.Inquiry) {
	subject := "Thank you for contacting Rahul"
	htmlBody := fmt.Sprintf(`<div style="font-family: sans-serif; line-height: 1.6; color: #333;">
    <p>Hi <strong>%s</strong>,</p>
    <p>Thank you for reaching out.</p>
    <p>I have received your inquiry and will contact you soon.</p>
    <br/>
    <p>Best regards,<br/><strong>Rahul Kure</strong></p>
</div>`, inq.FullName)
	textBody := fmt.Sprintf("Hi %s,\n\nThank you for reaching out.\nI have received your inquiry and will contact you soon.\n\nBest regards,\nRahul Kure", inq.FullName)

	if err := d.email.SendHTMLEmail(inq.Email, subject, htmlBody, textBody); err != nil {
		log.Printf("[NOTIFY] Acknowledgment email failed for inquiry id=%d: %v", inq.ID, err)
		metrics.RecordNotification("ack_email", false)
		return
	}
	log.Printf("[NOTIFY] Acknowledgment email sent for inquiry id=%d", inq.ID)
	metrics.RecordNotification("ack_email", true)
}

// sendChatAlert posts the inquiry to the chat channel. Silently skipped when
// the channel is not configured.
func (d *Dispatcher) sendChatAlert(inq *domain.Inquiry) {
	if d.chat == nil || !d.chat.IsConfigured() {
		return
	}

	text := fmt.Sprintf(`🚀 *New Portfolio Inquiry*

👤 *Name:* %s
📧 *Email:* %s
📱 *Phone:* %s
🛠 *Project:* %s
💰 *Budget:* %s
⏳ *Deadline:* %s

📝 *Description:*
%s

📅 *Date:* %s`,
		inq.FullName, inq.Email, orNA(inq.Phone), orNA(inq.ProjectType),
		orNA(inq.BudgetRange), orNA(inq.Deadline), inq.Description,
		inq.CreatedAt.Format("2006-01-02 15:04:05"))

	if err := d.chat.Send(text); err != nil {
		log.Printf("[NOTIFY] Chat alert failed for inquiry id=%d: %v", inq.ID, err)
		metrics.RecordNotification("chat", false)
		return
	}
	log.Printf("[NOTIFY] Chat alert sent for inquiry id=%d", inq.ID)
	metrics.RecordNotification("chat", true)
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
