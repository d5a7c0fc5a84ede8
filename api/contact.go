package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/mux"
	"github.com/logicton/siteapi/internal/content"
	"github.com/logicton/siteapi/internal/i18n"
	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Notifier is satisfied by notify.Dispatcher; tests substitute a recorder.
type Notifier interface {
	Dispatch(ctx context.Context, inq *models.ContactInquiry)
}

type ContactHandler struct {
	repo      repository.InquiryRepo
	validator *content.Validator
	notifier  Notifier
}

func NewContactHandler(repo repository.InquiryRepo, validator *content.Validator, notifier Notifier) *ContactHandler {
	return &ContactHandler{repo: repo, validator: validator, notifier: notifier}
}

type contactPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Language string `json:"language"`
}

type inquiryStatusRequest struct {
	Status models.InquiryStatus `json:"status"`
}

// Submit handles the public contact form. Validation happens before the
// inquiry is stored or any notification is attempted.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), "contact-payload", body); err != nil {
		writeJSON(w, Response{Success: false, Error: "Invalid form data", Message: "Please check your input fields"}, http.StatusBadRequest)
		return
	}

	var p contactPayload
	if err := json.Unmarshal(body, &p); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if !emailPattern.MatchString(p.Email) {
		writeJSON(w, Response{Success: false, Error: "Invalid form data", Message: "Please check your input fields"}, http.StatusBadRequest)
		return
	}
	if p.Language == "" {
		p.Language = string(i18n.ResolveAcceptLanguage(r.Header.Get("Accept-Language")))
	}

	inq := models.ContactInquiry{
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Company:     p.Company,
		Subject:     p.Subject,
		Message:     p.Message,
		Language:    p.Language,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
		Status:      models.InquiryNew,
		IPAddress:   clientIP(r),
	}

	id, err := h.repo.SaveInquiry(r.Context(), &inq)
	if err != nil {
		writeRepoError(w, err, "", "Failed to submit contact form")
		return
	}

	h.notifier.Dispatch(r.Context(), &inq)

	writeJSON(w, Response{
		Success: true,
		Data:    map[string]string{"id": id},
		Message: "Contact form submitted successfully",
	}, http.StatusOK)
}

// ListInquiries returns all inquiries with their status counts, newest first.
func (h *ContactHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.repo.ListInquiries(r.Context())
	if err != nil {
		writeRepoError(w, err, "", "Failed to fetch contact inquiries")
		return
	}
	stats, err := h.repo.InquiryStats(r.Context())
	if err != nil {
		writeRepoError(w, err, "", "Failed to fetch contact inquiries")
		return
	}

	writeData(w, map[string]any{
		"inquiries": inquiries,
		"stats":     stats,
	}, http.StatusOK)
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req inquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		writeError(w, "Invalid status value", http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateInquiryStatus(r.Context(), id, req.Status); err != nil {
		writeRepoError(w, err, "Inquiry not found", "Failed to update inquiry status")
		return
	}

	writeJSON(w, Response{Success: true, Message: "Inquiry status updated successfully"}, http.StatusOK)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.repo.DeleteInquiry(r.Context(), id); err != nil {
		writeRepoError(w, err, "Inquiry not found", "Failed to delete inquiry")
		return
	}

	writeJSON(w, Response{Success: true, Message: "Inquiry deleted successfully"}, http.StatusOK)
}
