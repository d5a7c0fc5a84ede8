package api

import (
	"encoding/json"
	"net/http"

	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

type CompanyHandler struct {
	repo repository.CompanyRepo
}

func NewCompanyHandler(repo repository.CompanyRepo) *CompanyHandler {
	return &CompanyHandler{repo: repo}
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.repo.GetCompanyInfo(r.Context())
	if err != nil {
		writeRepoError(w, err, "Company information not found", "Failed to fetch company content")
		return
	}

	setCacheControl(w, 300, 600)
	writeData(w, info, http.StatusOK)
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var info models.CompanyInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateCompanyInfo(r.Context(), &info); err != nil {
		writeRepoError(w, err, "", "Failed to update company content")
		return
	}

	writeJSON(w, Response{Success: true, Data: info, Message: "Company information updated successfully"}, http.StatusOK)
}
