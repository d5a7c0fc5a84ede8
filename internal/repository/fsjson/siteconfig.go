package fsjson

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

func (r *Repo) GetSiteConfig(ctx context.Context) (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	if err := r.store.ReadDoc(siteConfigPath, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := r.validator.ValidateValue(ctx, "site-config", &cfg); err != nil {
		return nil, fmt.Errorf("stored site config: %w", err)
	}

	return &cfg, nil
}

func (r *Repo) UpdateSiteConfig(ctx context.Context, cfg *models.SiteConfig) error {
	if cfg == nil {
		return fmt.Errorf("site config is nil")
	}
	if err := r.validator.ValidateValue(ctx, "site-config", cfg); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.WriteDoc(siteConfigPath, cfg)
}
