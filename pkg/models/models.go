package models

// Content entities shared by the file-backed and SQL-backed stores. Field
// names mirror the JSON documents under the content root and the admin API
// payloads, so the same structs serve storage and transport.

// LocalizedText carries the Thai and English renditions of a string. Both
// values are required by the entity schemas.
type LocalizedText struct {
	Th string `json:"th"`
	En string `json:"en"`
}

// LocalizedList is the bilingual counterpart for string lists (service
// features, SEO keywords).
type LocalizedList struct {
	Th []string `json:"th"`
	En []string `json:"en"`
}

// Category classifies services and portfolio items.
type Category string

const (
	CategoryWeb       Category = "web"
	CategoryMobile    Category = "mobile"
	CategoryAnimation Category = "animation"
	CategoryFramework Category = "framework"
)

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWeb, CategoryMobile, CategoryAnimation, CategoryFramework:
		return true
	}
	return false
}

// CompanyInfo is the singleton company profile stored at company/info.json.
type CompanyInfo struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description LocalizedText `json:"description"`
	Mission     LocalizedText `json:"mission"`
	Vision      LocalizedText `json:"vision"`
	History     LocalizedText `json:"history"`
	FoundedYear int           `json:"foundedYear"`
	Location    string        `json:"location"`
	UpdatedAt   string        `json:"updatedAt"`
}

// TeamMember is one entry of the company/team.json collection. Order is a
// mutable sort position; duplicates are allowed.
type TeamMember struct {
	ID       string        `json:"id"`
	Name     LocalizedText `json:"name"`
	Role     LocalizedText `json:"role"`
	Bio      LocalizedText `json:"bio"`
	Photo    string        `json:"photo"`
	Email    string        `json:"email,omitempty"`
	LinkedIn string        `json:"linkedin,omitempty"`
	Order    int           `json:"order"`
	IsActive bool          `json:"isActive"`
}

// Service is one entry of the services/services.json collection.
type Service struct {
	ID           string        `json:"id"`
	Title        LocalizedText `json:"title"`
	Description  LocalizedText `json:"description"`
	Features     LocalizedList `json:"features"`
	Technologies []string      `json:"technologies"`
	Icon         string        `json:"icon"`
	Category     Category      `json:"category"`
	Order        int           `json:"order"`
	IsActive     bool          `json:"isActive"`
}

// ClientRef names the client a portfolio item was built for.
type ClientRef struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

// PortfolioItem is stored in the portfolio_items SQLite table.
type PortfolioItem struct {
	ID            string        `json:"id"`
	Title         LocalizedText `json:"title"`
	Description   LocalizedText `json:"description"`
	Client        ClientRef     `json:"client"`
	Technologies  []string      `json:"technologies"`
	Images        []string      `json:"images"`
	DemoURL       string        `json:"demoUrl,omitempty"`
	GithubURL     string        `json:"githubUrl,omitempty"`
	Category      Category      `json:"category"`
	CompletedDate string        `json:"completedDate"`
	Featured      bool          `json:"featured"`
	IsActive      bool          `json:"isActive"`
}

// InquiryStatus is a free enum; the admin UI may move an inquiry between any
// two states, so no transition graph is enforced.
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryRead      InquiryStatus = "read"
	InquiryResponded InquiryStatus = "responded"
)

// Valid reports whether s is a known inquiry status.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryRead, InquiryResponded:
		return true
	}
	return false
}

// ContactInquiry is one contact-form submission, appended to
// contact-inquiries/inquiries.json.
type ContactInquiry struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	Company     string        `json:"company,omitempty"`
	Subject     string        `json:"subject"`
	Message     string        `json:"message"`
	Language    string        `json:"language"`
	SubmittedAt string        `json:"submittedAt"`
	Status      InquiryStatus `json:"status"`
	IPAddress   string        `json:"ipAddress"`
}

// InquiryStats counts inquiries per status. Total is always the sum of the
// three buckets.
type InquiryStats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Read      int `json:"read"`
	Responded int `json:"responded"`
}

// ContactInfo is the site-wide contact block inside SiteConfig.
type ContactInfo struct {
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Address LocalizedText `json:"address"`
}

// SocialMedia holds the public profile URLs.
type SocialMedia struct {
	Facebook string `json:"facebook"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// SEO holds the per-locale keyword lists.
type SEO struct {
	Keywords LocalizedList `json:"keywords"`
}

// SiteConfig is the singleton stored at settings/site-config.json.
type SiteConfig struct {
	SiteName        LocalizedText `json:"siteName"`
	SiteDescription LocalizedText `json:"siteDescription"`
	ContactInfo     ContactInfo   `json:"contactInfo"`
	SocialMedia     SocialMedia   `json:"socialMedia"`
	SEO             SEO           `json:"seo"`
}
