package api

import (
	"github.com/gorilla/mux"
	"github.com/logicton/siteapi/internal/config"
	"github.com/logicton/siteapi/internal/content"
	"github.com/logicton/siteapi/pkg/repository"
)

// Deps bundles everything the route handlers need. Content repositories are
// interfaces so tests can substitute mocks per handler.
type Deps struct {
	Company    repository.CompanyRepo
	Team       repository.TeamRepo
	Services   repository.ServiceRepo
	Portfolio  repository.PortfolioRepo
	SiteConfig repository.SiteConfigRepo
	Inquiries  repository.InquiryRepo
	Validator  *content.Validator
	Notifier   Notifier

	// AdminPasswordHash is the bcrypt hash of the configured admin password.
	AdminPasswordHash []byte
}

func SetupRoutes(cfg *config.Config, version, buildTime string, deps Deps) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(cfg.AdminUsername, deps.AdminPasswordHash, cfg.JWTSecret, cfg.TokenDuration)
	companyHandler := NewCompanyHandler(deps.Company)
	teamHandler := NewTeamHandler(deps.Team)
	servicesHandler := NewServicesHandler(deps.Services)
	portfolioHandler := NewPortfolioHandler(deps.Portfolio, deps.Validator)
	siteConfigHandler := NewSiteConfigHandler(deps.SiteConfig)
	contactHandler := NewContactHandler(deps.Inquiries, deps.Validator, deps.Notifier)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")

	// Public content reads and the contact form
	r.HandleFunc("/api/content/company", companyHandler.Get).Methods("GET")
	r.HandleFunc("/api/content/site-config", siteConfigHandler.Get).Methods("GET")
	r.HandleFunc("/api/content/team", teamHandler.List).Methods("GET")
	r.HandleFunc("/api/content/services", servicesHandler.List).Methods("GET")
	r.HandleFunc("/api/content/services/{id}", servicesHandler.Get).Methods("GET")
	r.HandleFunc("/api/content/portfolio", portfolioHandler.List).Methods("GET")
	r.HandleFunc("/api/content/portfolio/{id}", portfolioHandler.Get).Methods("GET")
	r.HandleFunc("/api/contact", contactHandler.Submit).Methods("POST")

	// Admin routes behind the JWT guard
	admin := r.PathPrefix("/api").Subrouter()
	admin.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	admin.HandleFunc("/content/company", companyHandler.Update).Methods("PUT")
	admin.HandleFunc("/content/site-config", siteConfigHandler.Update).Methods("PUT")

	admin.HandleFunc("/content/team", teamHandler.Create).Methods("POST")
	admin.HandleFunc("/content/team", teamHandler.Update).Methods("PUT")
	admin.HandleFunc("/content/team/{id}", teamHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/content/services", servicesHandler.Create).Methods("POST")
	admin.HandleFunc("/content/services/{id}", servicesHandler.Update).Methods("PUT")
	admin.HandleFunc("/content/services/{id}", servicesHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/content/portfolio", portfolioHandler.Create).Methods("POST")
	admin.HandleFunc("/content/portfolio/{id}", portfolioHandler.Update).Methods("PUT")
	admin.HandleFunc("/content/portfolio/{id}", portfolioHandler.Patch).Methods("PATCH")
	admin.HandleFunc("/content/portfolio/{id}", portfolioHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/contact/inquiries", contactHandler.ListInquiries).Methods("GET")
	admin.HandleFunc("/contact/inquiries/{id}", contactHandler.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/contact/inquiries/{id}", contactHandler.Delete).Methods("DELETE")

	return r
}
