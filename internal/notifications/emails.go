package notifications

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// InquiryNotification carries the fields shown in the owner email for a new
// contact-form submission.
type InquiryNotification struct {
	Name      string
	Email     string
	Company   string
	RoleTitle string
	Message   string
}

// MeetingNotification carries the fields shown in the owner email for a new
// meeting booking.
type MeetingNotification struct {
	Name    string
	Email   string
	Company string
	Topic   string
	Date    string
	Time    string
}

func (c *ResendClient) SendInquiryNotification(ctx context.Context, n InquiryNotification) (string, error) {
	subject := fmt.Sprintf("New Inquiry from %s", n.Name)

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px;">`)
	b.WriteString("<h2>New Contact Inquiry</h2><div>")
	writeRow(&b, "Name", n.Name)
	writeRow(&b, "Email", n.Email)
	writeRow(&b, "Company", n.Company)
	writeRow(&b, "Role/Title", n.RoleTitle)
	b.WriteString("<p><strong>Message:</strong></p><p style=\"white-space: pre-wrap;\">")
	b.WriteString(html.EscapeString(n.Message))
	b.WriteString("</p></div></div>")

	return c.sendHTML(ctx, subject, b.String())
}

func (c *ResendClient) SendMeetingNotification(ctx context.Context, n MeetingNotification) (string, error) {
	subject := fmt.Sprintf("New Meeting Request from %s", n.Name)

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px;">`)
	b.WriteString("<h2>New Meeting Request</h2><div>")
	writeRow(&b, "Name", n.Name)
	writeRow(&b, "Email", n.Email)
	writeRow(&b, "Company", n.Company)
	writeRow(&b, "Date", n.Date)
	writeRow(&b, "Time", n.Time)
	writeRow(&b, "Topic", n.Topic)
	b.WriteString("</div><p>Please respond to this meeting request within 30 minutes as promised on the website.</p></div>")

	return c.sendHTML(ctx, subject, b.String())
}

func writeRow(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "<p><strong>%s:</strong> %s</p>", label, html.EscapeString(value))
}
