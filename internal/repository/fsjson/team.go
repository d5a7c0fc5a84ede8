package fsjson

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

type teamDoc struct {
	Members []models.TeamMember `json:"members"`
}

func (r *Repo) ListMembers(ctx context.Context) ([]models.TeamMember, error) {
	return r.readMembers()
}

func (r *Repo) GetMember(ctx context.Context, id string) (*models.TeamMember, error) {
	members, err := r.readMembers()
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == id {
			m := members[i]
			return &m, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *Repo) CreateMember(ctx context.Context, m *models.TeamMember) (string, error) {
	if m == nil {
		return "", fmt.Errorf("team member is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	members, err := r.readMembers()
	if err != nil {
		return "", err
	}

	m.ID = newID("team")
	if m.Order == 0 {
		m.Order = len(members) + 1
	}
	if err := r.validator.ValidateValue(ctx, "team-member", m); err != nil {
		return "", err
	}

	members = append(members, *m)
	if err := r.store.WriteDoc(teamPath, teamDoc{Members: members}); err != nil {
		return "", err
	}

	return m.ID, nil
}

func (r *Repo) UpdateMember(ctx context.Context, m *models.TeamMember) error {
	if m == nil || m.ID == "" {
		return fmt.Errorf("team member id is required")
	}
	if err := r.validator.ValidateValue(ctx, "team-member", m); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	members, err := r.readMembers()
	if err != nil {
		return err
	}
	idx := -1
	for i := range members {
		if members[i].ID == m.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return repository.ErrNotFound
	}
	members[idx] = *m

	return r.store.WriteDoc(teamPath, teamDoc{Members: members})
}

func (r *Repo) DeleteMember(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, err := r.readMembers()
	if err != nil {
		return err
	}
	kept := members[:0]
	found := false
	for _, m := range members {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return repository.ErrNotFound
	}

	return r.store.WriteDoc(teamPath, teamDoc{Members: kept})
}

func (r *Repo) readMembers() ([]models.TeamMember, error) {
	var doc teamDoc
	if err := r.store.ReadDoc(teamPath, &doc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.TeamMember{}, nil
		}
		return nil, err
	}
	if doc.Members == nil {
		return []models.TeamMember{}, nil
	}

	return doc.Members, nil
}
