package fsjson

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

type servicesDoc struct {
	Services []models.Service `json:"services"`
}

func (r *Repo) ListServices(ctx context.Context) ([]models.Service, error) {
	return r.readServices(ctx)
}

func (r *Repo) GetService(ctx context.Context, id string) (*models.Service, error) {
	services, err := r.readServices(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			s := services[i]
			return &s, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *Repo) CreateService(ctx context.Context, s *models.Service) (string, error) {
	if s == nil {
		return "", fmt.Errorf("service is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	services, err := r.readServices(ctx)
	if err != nil {
		return "", err
	}

	s.ID = newID("service")
	if s.Order == 0 {
		s.Order = len(services)
	}
	if err := r.validator.ValidateValue(ctx, "service", s); err != nil {
		return "", err
	}

	services = append(services, *s)
	if err := r.store.WriteDoc(servicesPath, servicesDoc{Services: services}); err != nil {
		return "", err
	}

	return s.ID, nil
}

func (r *Repo) UpdateService(ctx context.Context, s *models.Service) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("service id is required")
	}
	if err := r.validator.ValidateValue(ctx, "service", s); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	services, err := r.readServices(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range services {
		if services[i].ID == s.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return repository.ErrNotFound
	}
	services[idx] = *s

	return r.store.WriteDoc(servicesPath, servicesDoc{Services: services})
}

func (r *Repo) DeleteService(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	services, err := r.readServices(ctx)
	if err != nil {
		return err
	}
	kept := services[:0]
	found := false
	for _, s := range services {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return repository.ErrNotFound
	}

	return r.store.WriteDoc(servicesPath, servicesDoc{Services: kept})
}

func (r *Repo) readServices(ctx context.Context) ([]models.Service, error) {
	var doc servicesDoc
	if err := r.store.ReadDoc(servicesPath, &doc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Service{}, nil
		}
		return nil, err
	}
	for i := range doc.Services {
		if err := r.validator.ValidateValue(ctx, "service", &doc.Services[i]); err != nil {
			return nil, fmt.Errorf("stored service %s: %w", doc.Services[i].ID, err)
		}
	}
	if doc.Services == nil {
		return []models.Service{}, nil
	}

	return doc.Services, nil
}
