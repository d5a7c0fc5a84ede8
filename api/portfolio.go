package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/logicton/siteapi/internal/content"
	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

const placeholderImage = "/images/portfolio/placeholder-1.jpg"

type PortfolioHandler struct {
	repo      repository.PortfolioRepo
	validator *content.Validator
}

func NewPortfolioHandler(repo repository.PortfolioRepo, validator *content.Validator) *PortfolioHandler {
	return &PortfolioHandler{repo: repo, validator: validator}
}

type portfolioRequest struct {
	Title         *models.LocalizedText `json:"title"`
	Description   *models.LocalizedText `json:"description"`
	Client        *models.ClientRef     `json:"client"`
	Technologies  []string              `json:"technologies"`
	Images        []string              `json:"images"`
	DemoURL       string                `json:"demoUrl"`
	GithubURL     string                `json:"githubUrl"`
	Category      models.Category       `json:"category"`
	CompletedDate string                `json:"completedDate"`
	Featured      *bool                 `json:"featured"`
	IsActive      *bool                 `json:"isActive"`
}

type portfolioFlagsRequest struct {
	Featured *bool `json:"featured"`
	IsActive *bool `json:"isActive"`
}

func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListItems(r.Context())
	if err != nil {
		writeRepoError(w, err, "", "Failed to fetch portfolio content")
		return
	}

	setCacheControl(w, 300, 600)
	writeData(w, items, http.StatusOK)
}

func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	it, err := h.repo.GetItem(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Portfolio item not found", "Failed to fetch portfolio item")
		return
	}

	writeData(w, it, http.StatusOK)
}

func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req portfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == nil || req.Title.Th == "" || req.Title.En == "" || req.Client == nil {
		writeError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	it := h.buildItem(&req)
	if err := h.validator.ValidateValue(r.Context(), "portfolio-item", it); err != nil {
		writeRepoError(w, err, "", "Failed to create portfolio item")
		return
	}

	if _, err := h.repo.CreateItem(r.Context(), it); err != nil {
		writeRepoError(w, err, "", "Failed to create portfolio item")
		return
	}

	writeData(w, it, http.StatusCreated)
}

func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req portfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == nil || req.Title.Th == "" || req.Title.En == "" || req.Client == nil {
		writeError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	it := h.buildItem(&req)
	it.ID = id
	if err := h.validator.ValidateValue(r.Context(), "portfolio-item", it); err != nil {
		writeRepoError(w, err, "", "Failed to update portfolio item")
		return
	}

	if err := h.repo.UpdateItem(r.Context(), it); err != nil {
		writeRepoError(w, err, "Portfolio item not found", "Failed to update portfolio item")
		return
	}

	writeData(w, it, http.StatusOK)
}

// Patch updates only the featured/isActive toggles; the admin list view
// flips them without resending the full record.
func (h *PortfolioHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req portfolioFlagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Featured == nil && req.IsActive == nil {
		writeError(w, "No fields to update", http.StatusBadRequest)
		return
	}

	if err := h.repo.SetItemFlags(r.Context(), id, req.Featured, req.IsActive); err != nil {
		writeRepoError(w, err, "Portfolio item not found", "Failed to update portfolio item")
		return
	}

	writeJSON(w, Response{Success: true, Message: "Portfolio item updated successfully"}, http.StatusOK)
}

func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.repo.DeleteItem(r.Context(), id); err != nil {
		writeRepoError(w, err, "Portfolio item not found", "Failed to delete portfolio item")
		return
	}

	writeJSON(w, Response{Success: true, Message: "Portfolio item deleted successfully"}, http.StatusOK)
}

func (h *PortfolioHandler) buildItem(req *portfolioRequest) *models.PortfolioItem {
	it := &models.PortfolioItem{
		Title:         *req.Title,
		Client:        *req.Client,
		Technologies:  []string{},
		Images:        []string{placeholderImage},
		DemoURL:       req.DemoURL,
		GithubURL:     req.GithubURL,
		Category:      models.CategoryWeb,
		CompletedDate: time.Now().UTC().Format(time.RFC3339),
		Featured:      true,
		IsActive:      true,
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if len(req.Technologies) > 0 {
		it.Technologies = req.Technologies
	}
	if len(req.Images) > 0 {
		it.Images = req.Images
	}
	if req.Category != "" {
		it.Category = req.Category
	}
	if req.CompletedDate != "" {
		it.CompletedDate = req.CompletedDate
	}
	if req.Featured != nil {
		it.Featured = *req.Featured
	}
	if req.IsActive != nil {
		it.IsActive = *req.IsActive
	}

	return it
}
