package fsjson

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

// Inquiries live in a bare JSON array, unlike the wrapped content documents.

func (r *Repo) ListInquiries(ctx context.Context) ([]models.ContactInquiry, error) {
	inquiries, err := r.readInquiries()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(inquiries, func(i, j int) bool {
		return inquiries[i].SubmittedAt > inquiries[j].SubmittedAt
	})

	return inquiries, nil
}

func (r *Repo) SaveInquiry(ctx context.Context, inq *models.ContactInquiry) (string, error) {
	if inq == nil {
		return "", fmt.Errorf("inquiry is nil")
	}

	if inq.ID == "" {
		inq.ID = newID("inquiry")
	}
	if inq.SubmittedAt == "" {
		inq.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if inq.Status == "" {
		inq.Status = models.InquiryNew
	}
	if err := r.validator.ValidateValue(ctx, "contact-inquiry", inq); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inquiries, err := r.readInquiries()
	if err != nil {
		return "", err
	}
	inquiries = append(inquiries, *inq)
	if err := r.store.WriteDoc(inquiriesPath, inquiries); err != nil {
		return "", err
	}

	return inq.ID, nil
}

func (r *Repo) UpdateInquiryStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid inquiry status %q", status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inquiries, err := r.readInquiries()
	if err != nil {
		return err
	}
	idx := -1
	for i := range inquiries {
		if inquiries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return repository.ErrNotFound
	}
	inquiries[idx].Status = status

	return r.store.WriteDoc(inquiriesPath, inquiries)
}

func (r *Repo) DeleteInquiry(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inquiries, err := r.readInquiries()
	if err != nil {
		return err
	}
	kept := inquiries[:0]
	found := false
	for _, inq := range inquiries {
		if inq.ID == id {
			found = true
			continue
		}
		kept = append(kept, inq)
	}
	if !found {
		return repository.ErrNotFound
	}

	return r.store.WriteDoc(inquiriesPath, kept)
}

func (r *Repo) InquiryStats(ctx context.Context) (*models.InquiryStats, error) {
	inquiries, err := r.readInquiries()
	if err != nil {
		return nil, err
	}

	stats := &models.InquiryStats{Total: len(inquiries)}
	for _, inq := range inquiries {
		switch inq.Status {
		case models.InquiryNew:
			stats.New++
		case models.InquiryRead:
			stats.Read++
		case models.InquiryResponded:
			stats.Responded++
		}
	}

	return stats, nil
}

func (r *Repo) readInquiries() ([]models.ContactInquiry, error) {
	var inquiries []models.ContactInquiry
	if err := r.store.ReadDoc(inquiriesPath, &inquiries); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.ContactInquiry{}, nil
		}
		return nil, err
	}
	if inquiries == nil {
		return []models.ContactInquiry{}, nil
	}

	return inquiries, nil
}
