package api

import (
	"encoding/json"
	"net/http"

	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

type SiteConfigHandler struct {
	repo repository.SiteConfigRepo
}

func NewSiteConfigHandler(repo repository.SiteConfigRepo) *SiteConfigHandler {
	return &SiteConfigHandler{repo: repo}
}

func (h *SiteConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.repo.GetSiteConfig(r.Context())
	if err != nil {
		writeRepoError(w, err, "Site configuration not found", "Failed to fetch site configuration")
		return
	}

	setCacheControl(w, 600, 900)
	writeData(w, cfg, http.StatusOK)
}

func (h *SiteConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	var cfg models.SiteConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateSiteConfig(r.Context(), &cfg); err != nil {
		writeRepoError(w, err, "", "Failed to update site configuration")
		return
	}

	writeJSON(w, Response{Success: true, Data: cfg, Message: "Site configuration updated successfully"}, http.StatusOK)
}
