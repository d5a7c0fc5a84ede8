package notify

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/logicton/siteapi/pkg/models"
)

// Bilingual message formats for contact-form notifications. The language of
// the submission decides which labels are used.

func contactSubject(inq *models.ContactInquiry) string {
	if inq.Language == "th" {
		return "ข้อความใหม่จากฟอร์มติดต่อ: " + inq.Subject
	}
	return "New Contact Form Message: " + inq.Subject
}

// ContactMessageText renders the plain-text notification body.
func ContactMessageText(inq *models.ContactInquiry) string {
	isThai := inq.Language == "th"
	label := func(th, en string) string {
		if isThai {
			return th
		}
		return en
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📧 %s\n", label("ข้อความใหม่จากฟอร์มติดต่อ", "New Contact Form Message"))
	b.WriteString("─────────────────────────────\n\n")
	fmt.Fprintf(&b, "%s %s\n", label("ชื่อ:", "Name:"), inq.Name)
	fmt.Fprintf(&b, "%s %s\n", label("อีเมล:", "Email:"), inq.Email)
	if inq.Phone != "" {
		fmt.Fprintf(&b, "%s %s\n", label("โทรศัพท์:", "Phone:"), inq.Phone)
	}
	if inq.Company != "" {
		fmt.Fprintf(&b, "%s %s\n", label("บริษัท:", "Company:"), inq.Company)
	}
	fmt.Fprintf(&b, "\n%s %s\n", label("หัวข้อ:", "Subject:"), inq.Subject)
	fmt.Fprintf(&b, "\n%s\n%s\n", label("ข้อความ:", "Message:"), inq.Message)
	b.WriteString("\n─────────────────────────────\n")
	fmt.Fprintf(&b, "%s Logicton Website\n", label("ส่งมาจาก:", "Sent from:"))
	b.WriteString(time.Now().UTC().Format(time.RFC1123))

	return b.String()
}

var emailTmpl = template.Must(template.New("contact-email").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Heading}}</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="background: #667eea; color: white; padding: 20px; border-radius: 10px 10px 0 0; text-align: center;">📧 {{.Heading}}</h1>
  <div style="background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
    <p><strong>{{.NameLabel}}</strong> {{.Inquiry.Name}}</p>
    <p><strong>{{.EmailLabel}}</strong> {{.Inquiry.Email}}</p>
    {{if .Inquiry.Phone}}<p><strong>{{.PhoneLabel}}</strong> {{.Inquiry.Phone}}</p>{{end}}
    {{if .Inquiry.Company}}<p><strong>{{.CompanyLabel}}</strong> {{.Inquiry.Company}}</p>{{end}}
    <p><strong>{{.SubjectLabel}}</strong> {{.Inquiry.Subject}}</p>
    <div style="background: #fffbeb; padding: 15px; border-radius: 5px; border-left: 4px solid #f59e0b;">
      <strong>{{.MessageLabel}}</strong>
      <p style="white-space: pre-wrap;">{{.Inquiry.Message}}</p>
    </div>
  </div>
  <p style="text-align: center; color: #666; font-size: 12px;">{{.Footer}}<br>{{.Timestamp}}</p>
</body>
</html>
`))

// ContactEmailHTML renders the HTML notification body. Field values are
// escaped by html/template.
func ContactEmailHTML(inq *models.ContactInquiry) string {
	isThai := inq.Language == "th"
	label := func(th, en string) string {
		if isThai {
			return th
		}
		return en
	}

	data := struct {
		Inquiry      *models.ContactInquiry
		Heading      string
		NameLabel    string
		EmailLabel   string
		PhoneLabel   string
		CompanyLabel string
		SubjectLabel string
		MessageLabel string
		Footer       string
		Timestamp    string
	}{
		Inquiry:      inq,
		Heading:      label("ข้อความใหม่จากฟอร์มติดต่อ", "New Contact Form Message"),
		NameLabel:    label("ชื่อ:", "Name:"),
		EmailLabel:   label("อีเมล:", "Email:"),
		PhoneLabel:   label("โทรศัพท์:", "Phone:"),
		CompanyLabel: label("บริษัท:", "Company:"),
		SubjectLabel: label("หัวข้อ:", "Subject:"),
		MessageLabel: label("ข้อความ:", "Message:"),
		Footer:       label("ข้อความนี้ถูกส่งจากฟอร์มติดต่อที่เว็บไซต์ของคุณ", "This message was sent from your website contact form"),
		Timestamp:    time.Now().UTC().Format(time.RFC1123),
	}

	var b strings.Builder
	if err := emailTmpl.Execute(&b, data); err != nil {
		// template over a plain struct cannot fail at runtime; keep the
		// text body usable if it ever does
		return ContactMessageText(inq)
	}

	return b.String()
}
