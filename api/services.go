package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/gorilla/mux"
	"github.com/logicton/siteapi/internal/content"
	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

type ServicesHandler struct {
	repo repository.ServiceRepo
}

func NewServicesHandler(repo repository.ServiceRepo) *ServicesHandler {
	return &ServicesHandler{repo: repo}
}

type serviceRequest struct {
	Title        *models.LocalizedText `json:"title"`
	Description  *models.LocalizedText `json:"description"`
	Features     *models.LocalizedList `json:"features"`
	Technologies []string              `json:"technologies"`
	Icon         string                `json:"icon"`
	Category     models.Category       `json:"category"`
	Order        *int                  `json:"order"`
	IsActive     *bool                 `json:"isActive"`
}

func (h *ServicesHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.ListServices(r.Context())
	if err != nil {
		writeRepoError(w, err, "", "Failed to fetch services content")
		return
	}

	setCacheControl(w, 600, 900)
	writeData(w, services, http.StatusOK)
}

func (h *ServicesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s, err := h.repo.GetService(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Service not found", "Failed to fetch service")
		return
	}

	writeData(w, s, http.StatusOK)
}

func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == nil || req.Title.Th == "" || req.Title.En == "" || req.Description == nil {
		writeError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	s := models.Service{
		Title:        *req.Title,
		Description:  *req.Description,
		Features:     models.LocalizedList{Th: []string{}, En: []string{}},
		Technologies: []string{},
		Icon:         "🚀",
		Category:     models.CategoryWeb,
		IsActive:     true,
	}
	if req.Features != nil {
		s.Features = *req.Features
	}
	if req.Technologies != nil {
		s.Technologies = req.Technologies
	}
	if req.Icon != "" {
		s.Icon = req.Icon
	}
	if req.Category != "" {
		s.Category = req.Category
	}
	if req.Order != nil {
		s.Order = *req.Order
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	if _, err := h.repo.CreateService(r.Context(), &s); err != nil {
		writeRepoError(w, err, "", "Failed to create service")
		return
	}

	writeData(w, s, http.StatusCreated)
}

func (h *ServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.GetService(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Service not found", "Failed to update service")
		return
	}

	updated := *existing
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Features != nil {
		updated.Features = *req.Features
	}
	if req.Technologies != nil {
		updated.Technologies = req.Technologies
	}
	if req.Icon != "" {
		updated.Icon = req.Icon
	}
	if req.Category != "" {
		updated.Category = req.Category
	}
	if req.Order != nil {
		updated.Order = *req.Order
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	if err := h.repo.UpdateService(r.Context(), &updated); err != nil {
		writeRepoError(w, err, "Service not found", "Failed to update service")
		return
	}

	writeData(w, updated, http.StatusOK)
}

func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.repo.DeleteService(r.Context(), id); err != nil {
		writeRepoError(w, err, "Service not found", "Failed to delete service")
		return
	}

	writeJSON(w, Response{Success: true, Message: "Service deleted successfully"}, http.StatusOK)
}

// writeRepoError maps repository and validation failures onto the API error
// contract: ErrNotFound -> 404, schema rejection -> 400, anything else -> 500.
func writeRepoError(w http.ResponseWriter, err error, notFoundMsg, failMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = "Not found"
		}
		writeError(w, notFoundMsg, http.StatusNotFound)
	case errors.Is(err, content.ErrInvalid):
		writeError(w, "Invalid data format", http.StatusBadRequest)
	default:
		logger.Error("repository error", slog.Any("err", err))
		writeError(w, failMsg, http.StatusInternalServerError)
	}
}
