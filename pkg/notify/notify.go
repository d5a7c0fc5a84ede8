// Package notify fans out contact-form notifications to the configured email
// and LINE Notify providers. Both sends are best effort: they run
// concurrently, failures are logged, and nothing is retried or surfaced to
// the submitting client.
package notify

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/logicton/siteapi/pkg/models"
)

// package-level logger; can be replaced by callers via SetLogger
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger sets the logger used by pkg/notify. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Dispatcher sends contact notifications through both providers.
type Dispatcher struct {
	email *EmailClient
	line  *LineClient
}

func NewDispatcher(email *EmailClient, line *LineClient) *Dispatcher {
	return &Dispatcher{email: email, line: line}
}

// Dispatch formats the inquiry and sends the email and LINE notifications
// concurrently, waiting for both. It never returns an error: either provider
// failing must not fail the contact submission.
func (d *Dispatcher) Dispatch(ctx context.Context, inq *models.ContactInquiry) {
	text := ContactMessageText(inq)
	html := ContactEmailHTML(inq)
	subject := contactSubject(inq)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := d.email.Send(ctx, subject, html, text); err != nil {
			logger.Error("email notification failed", slog.String("inquiry", inq.ID), slog.Any("err", err))
		}
	}()
	go func() {
		defer wg.Done()
		if err := d.line.Send(ctx, text); err != nil {
			logger.Error("line notification failed", slog.String("inquiry", inq.ID), slog.Any("err", err))
		}
	}()
	wg.Wait()
}
