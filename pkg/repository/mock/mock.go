package mock

import (
	"context"
	"fmt"

	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository"
)

// Test helpers and mocks
type Mocks struct {
	Company    *CompanyRepo
	Team       *TeamRepo
	Services   *ServiceRepo
	Portfolio  *PortfolioRepo
	SiteConfig *SiteConfigRepo
	Inquiries  *InquiryRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Company:    &CompanyRepo{},
		Team:       &TeamRepo{},
		Services:   &ServiceRepo{},
		Portfolio:  &PortfolioRepo{},
		SiteConfig: &SiteConfigRepo{},
		Inquiries:  &InquiryRepo{},
	}
}

type CompanyRepo struct {
	Stored *models.CompanyInfo
	Err    error
}

func (m *CompanyRepo) GetCompanyInfo(ctx context.Context) (*models.CompanyInfo, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Stored == nil {
		return nil, repository.ErrNotFound
	}
	return m.Stored, nil
}

func (m *CompanyRepo) UpdateCompanyInfo(ctx context.Context, info *models.CompanyInfo) error {
	if m.Err != nil {
		return m.Err
	}
	m.Stored = info
	return nil
}

type TeamRepo struct {
	Members []models.TeamMember
	Err     error
}

func (m *TeamRepo) ListMembers(ctx context.Context) ([]models.TeamMember, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Members, nil
}

func (m *TeamRepo) GetMember(ctx context.Context, id string) (*models.TeamMember, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Members {
		if m.Members[i].ID == id {
			return &m.Members[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *TeamRepo) CreateMember(ctx context.Context, member *models.TeamMember) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if member.ID == "" {
		member.ID = fmt.Sprintf("team-%d", len(m.Members)+1)
	}
	m.Members = append(m.Members, *member)
	return member.ID, nil
}

func (m *TeamRepo) UpdateMember(ctx context.Context, member *models.TeamMember) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Members {
		if m.Members[i].ID == member.ID {
			m.Members[i] = *member
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *TeamRepo) DeleteMember(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Members {
		if m.Members[i].ID == id {
			m.Members = append(m.Members[:i], m.Members[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type ServiceRepo struct {
	Services []models.Service
	Err      error
}

func (m *ServiceRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Services, nil
}

func (m *ServiceRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Services {
		if m.Services[i].ID == id {
			return &m.Services[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *ServiceRepo) CreateService(ctx context.Context, s *models.Service) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if s.ID == "" {
		s.ID = fmt.Sprintf("service-%d", len(m.Services)+1)
	}
	m.Services = append(m.Services, *s)
	return s.ID, nil
}

func (m *ServiceRepo) UpdateService(ctx context.Context, s *models.Service) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Services {
		if m.Services[i].ID == s.ID {
			m.Services[i] = *s
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *ServiceRepo) DeleteService(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Services {
		if m.Services[i].ID == id {
			m.Services = append(m.Services[:i], m.Services[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type PortfolioRepo struct {
	Items []models.PortfolioItem
	Err   error
}

func (m *PortfolioRepo) ListItems(ctx context.Context) ([]models.PortfolioItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Items, nil
}

func (m *PortfolioRepo) GetItem(ctx context.Context, id string) (*models.PortfolioItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Items {
		if m.Items[i].ID == id {
			return &m.Items[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *PortfolioRepo) CreateItem(ctx context.Context, it *models.PortfolioItem) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if it.ID == "" {
		it.ID = fmt.Sprintf("portfolio_%d", len(m.Items)+1)
	}
	m.Items = append(m.Items, *it)
	return it.ID, nil
}

func (m *PortfolioRepo) UpdateItem(ctx context.Context, it *models.PortfolioItem) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Items {
		if m.Items[i].ID == it.ID {
			m.Items[i] = *it
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *PortfolioRepo) SetItemFlags(ctx context.Context, id string, featured, isActive *bool) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Items {
		if m.Items[i].ID == id {
			if featured != nil {
				m.Items[i].Featured = *featured
			}
			if isActive != nil {
				m.Items[i].IsActive = *isActive
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *PortfolioRepo) DeleteItem(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Items {
		if m.Items[i].ID == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type SiteConfigRepo struct {
	Stored *models.SiteConfig
	Err    error
}

func (m *SiteConfigRepo) GetSiteConfig(ctx context.Context) (*models.SiteConfig, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Stored == nil {
		return nil, repository.ErrNotFound
	}
	return m.Stored, nil
}

func (m *SiteConfigRepo) UpdateSiteConfig(ctx context.Context, cfg *models.SiteConfig) error {
	if m.Err != nil {
		return m.Err
	}
	m.Stored = cfg
	return nil
}

type InquiryRepo struct {
	Inquiries []models.ContactInquiry
	Err       error
}

func (m *InquiryRepo) ListInquiries(ctx context.Context) ([]models.ContactInquiry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Inquiries, nil
}

func (m *InquiryRepo) SaveInquiry(ctx context.Context, inq *models.ContactInquiry) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if inq.ID == "" {
		inq.ID = fmt.Sprintf("inquiry-%d", len(m.Inquiries)+1)
	}
	if inq.Status == "" {
		inq.Status = models.InquiryNew
	}
	m.Inquiries = append(m.Inquiries, *inq)
	return inq.ID, nil
}

func (m *InquiryRepo) UpdateInquiryStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Inquiries {
		if m.Inquiries[i].ID == id {
			m.Inquiries[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *InquiryRepo) DeleteInquiry(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Inquiries {
		if m.Inquiries[i].ID == id {
			m.Inquiries = append(m.Inquiries[:i], m.Inquiries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *InquiryRepo) InquiryStats(ctx context.Context) (*models.InquiryStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	stats := &models.InquiryStats{Total: len(m.Inquiries)}
	for _, inq := range m.Inquiries {
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
