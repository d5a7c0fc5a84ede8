package repository

import (
	"context"
	"errors"

	"github.com/logicton/siteapi/pkg/models"
)

// ErrNotFound is returned when a lookup or mutation targets an id that does
// not exist. Handlers map it to a 404; everything else becomes a 500.
var ErrNotFound = errors.New("not found")

// Repository interfaces for content entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type CompanyRepo interface {
	GetCompanyInfo(ctx context.Context) (*models.CompanyInfo, error)
	UpdateCompanyInfo(ctx context.Context, info *models.CompanyInfo) error
}

type TeamRepo interface {
	ListMembers(ctx context.Context) ([]models.TeamMember, error)
	GetMember(ctx context.Context, id string) (*models.TeamMember, error)
	CreateMember(ctx context.Context, m *models.TeamMember) (string, error)
	UpdateMember(ctx context.Context, m *models.TeamMember) error
	DeleteMember(ctx context.Context, id string) error
}

type ServiceRepo interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) (string, error)
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id string) error
}

type PortfolioRepo interface {
	ListItems(ctx context.Context) ([]models.PortfolioItem, error)
	GetItem(ctx context.Context, id string) (*models.PortfolioItem, error)
	CreateItem(ctx context.Context, it *models.PortfolioItem) (string, error)
	UpdateItem(ctx context.Context, it *models.PortfolioItem) error
	// SetItemFlags updates only the featured/isActive toggles; nil means
	// leave the flag unchanged.
	SetItemFlags(ctx context.Context, id string, featured, isActive *bool) error
	DeleteItem(ctx context.Context, id string) error
}

type SiteConfigRepo interface {
	GetSiteConfig(ctx context.Context) (*models.SiteConfig, error)
	UpdateSiteConfig(ctx context.Context, cfg *models.SiteConfig) error
}

type InquiryRepo interface {
	// ListInquiries returns all inquiries, newest first.
	ListInquiries(ctx context.Context) ([]models.ContactInquiry, error)
	SaveInquiry(ctx context.Context, inq *models.ContactInquiry) (string, error)
	UpdateInquiryStatus(ctx context.Context, id string, status models.InquiryStatus) error
	DeleteInquiry(ctx context.Context, id string) error
	InquiryStats(ctx context.Context) (*models.InquiryStats, error)
}
