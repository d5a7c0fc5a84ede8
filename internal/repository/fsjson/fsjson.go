// Package fsjson implements the content repositories over JSON documents in
// the content store. Collections are rewritten whole on every mutation; the
// repo mutex serializes read-modify-write sequences within the process.
package fsjson

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/logicton/siteapi/internal/content"
	"github.com/logicton/siteapi/pkg/repository"
)

const (
	companyInfoPath = "company/info.json"
	teamPath        = "company/team.json"
	servicesPath    = "services/services.json"
	siteConfigPath  = "settings/site-config.json"
	inquiriesPath   = "contact-inquiries/inquiries.json"
)

// Repo implements the file-backed repository interfaces.
type Repo struct {
	store     *content.Store
	validator *content.Validator
	logger    *slog.Logger

	mu sync.Mutex
}

// Ensure Repo implements the public interfaces.
var _ repository.CompanyRepo = (*Repo)(nil)
var _ repository.TeamRepo = (*Repo)(nil)
var _ repository.ServiceRepo = (*Repo)(nil)
var _ repository.SiteConfigRepo = (*Repo)(nil)
var _ repository.InquiryRepo = (*Repo)(nil)

func New(store *content.Store, validator *content.Validator, logger *slog.Logger) *Repo {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repo{store: store, validator: validator, logger: logger}
}

// newID generates ids of the form prefix-<unix ms>-<8 hex chars>.
func newID(prefix string) string {
	id := uuid.New()
	return fmt.Sprintf("%s-%d-%x", prefix, time.Now().UTC().UnixMilli(), id[:4])
}
