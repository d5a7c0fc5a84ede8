package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

type TeamHandler struct {
	repo repository.TeamRepo
}

func NewTeamHandler(repo repository.TeamRepo) *TeamHandler {
	return &TeamHandler{repo: repo}
}

type teamMemberRequest struct {
	ID       string                `json:"id"`
	Name     *models.LocalizedText `json:"name"`
	Role     *models.LocalizedText `json:"role"`
	Bio      *models.LocalizedText `json:"bio"`
	Photo    *string               `json:"photo"`
	Email    *string               `json:"email"`
	LinkedIn *string               `json:"linkedin"`
	Order    *int                  `json:"order"`
	IsActive *bool                 `json:"isActive"`
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.repo.ListMembers(r.Context())
	if err != nil {
		writeRepoError(w, err, "", "Failed to fetch team content")
		return
	}

	setCacheControl(w, 600, 900)
	writeData(w, members, http.StatusOK)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req teamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	m := models.TeamMember{IsActive: true}
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Role != nil {
		m.Role = *req.Role
	}
	if req.Bio != nil {
		m.Bio = *req.Bio
	}
	if req.Photo != nil {
		m.Photo = *req.Photo
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.LinkedIn != nil {
		m.LinkedIn = *req.LinkedIn
	}
	if req.Order != nil {
		m.Order = *req.Order
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if _, err := h.repo.CreateMember(r.Context(), &m); err != nil {
		writeRepoError(w, err, "", "Failed to create team member")
		return
	}

	writeJSON(w, Response{Success: true, Data: m, Message: "Team member added successfully"}, http.StatusCreated)
}

// Update takes the member id in the request body, matching the admin UI's
// full-collection editing flow.
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req teamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		writeError(w, "Member id is required", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.GetMember(r.Context(), req.ID)
	if err != nil {
		writeRepoError(w, err, "Team member not found", "Failed to update team member")
		return
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Role != nil {
		updated.Role = *req.Role
	}
	if req.Bio != nil {
		updated.Bio = *req.Bio
	}
	if req.Photo != nil {
		updated.Photo = *req.Photo
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	if req.LinkedIn != nil {
		updated.LinkedIn = *req.LinkedIn
	}
	if req.Order != nil {
		updated.Order = *req.Order
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	if err := h.repo.UpdateMember(r.Context(), &updated); err != nil {
		writeRepoError(w, err, "Team member not found", "Failed to update team member")
		return
	}

	writeJSON(w, Response{Success: true, Data: updated, Message: "Team member updated successfully"}, http.StatusOK)
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.repo.DeleteMember(r.Context(), id); err != nil {
		writeRepoError(w, err, "Team member not found", "Failed to delete team member")
		return
	}

	writeJSON(w, Response{Success: true, Message: "Team member deleted successfully"}, http.StatusOK)
}
