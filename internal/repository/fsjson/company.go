package fsjson

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

func (r *Repo) GetCompanyInfo(ctx context.Context) (*models.CompanyInfo, error) {
	var info models.CompanyInfo
	if err := r.store.ReadDoc(companyInfoPath, &info); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := r.validator.ValidateValue(ctx, "company-info", &info); err != nil {
		return nil, fmt.Errorf("stored company info: %w", err)
	}

	return &info, nil
}

func (r *Repo) UpdateCompanyInfo(ctx context.Context, info *models.CompanyInfo) error {
	if info == nil {
		return fmt.Errorf("company info is nil")
	}
	info.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := r.validator.ValidateValue(ctx, "company-info", info); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.WriteDoc(companyInfoPath, info)
}
