package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/logicton/siteapi/api"
	"github.com/logicton/siteapi/internal/config"
	"github.com/logicton/siteapi/internal/content"
	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository/mock"
)

func setupRouter(t *testing.T) (http.Handler, *mock.Mocks) {
	t.Helper()
	validator, err := content.NewValidator(context.Background())
	if err != nil {
		t.Fatalf("compile schemas: %v", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	cfg := &config.Config{
		Addr:          ":0",
		Env:           "development",
		JWTSecret:     "testsecret",
		TokenDuration: time.Hour,
		AdminUsername: "admin",
	}
	mocks := mock.NewMocks()
	router := api.SetupRoutes(cfg, "test", "now", api.Deps{
		Company:           mocks.Company,
		Team:              mocks.Team,
		Services:          mocks.Services,
		Portfolio:         mocks.Portfolio,
		SiteConfig:        mocks.SiteConfig,
		Inquiries:         mocks.Inquiries,
		Validator:         validator,
		Notifier:          &recordingNotifier{},
		AdminPasswordHash: hash,
	})

	return router, mocks
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _ := setupRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/content/services"},
		{http.MethodPut, "/api/content/company"},
		{http.MethodPut, "/api/content/site-config"},
		{http.MethodPost, "/api/content/team"},
		{http.MethodDelete, "/api/content/portfolio/portfolio_1"},
		{http.MethodGet, "/api/contact/inquiries"},
		{http.MethodPatch, "/api/contact/inquiries/inq-1"},
		{http.MethodDelete, "/api/contact/inquiries/inq-1"},
	}

	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Result().StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401 got %d", p.method, p.path, w.Result().StatusCode)
		}
	}
}

func TestPublicRoutesAreOpen(t *testing.T) {
	router, mocks := setupRouter(t)
	mocks.Company.Stored = &models.CompanyInfo{ID: "company-info", Name: "Logicton"}

	paths := []string{
		"/health",
		"/version",
		"/api/content/company",
		"/api/content/team",
		"/api/content/services",
		"/api/content/portfolio",
	}
	for _, p := range paths {
		req := httptest.NewRequest(http.MethodGet, p, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("GET %s: expected 200 got %d", p, w.Result().StatusCode)
		}
	}
}

func TestLoginThenMutate(t *testing.T) {
	router, mocks := setupRouter(t)

	// login
	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "hunter2"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200 got %d", res.StatusCode)
	}
	var loginResp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&loginResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	// create a service with the token
	body, _ = json.Marshal(map[string]any{
		"title":       map[string]string{"th": "พัฒนาเว็บไซต์", "en": "Web Development"},
		"description": map[string]string{"th": "รายละเอียด", "en": "Details"},
	})
	req = httptest.NewRequest(http.MethodPost, "/api/content/services", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+loginResp.Data.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("create service: expected 201 got %d", w.Result().StatusCode)
	}
	if len(mocks.Services.Services) != 1 {
		t.Fatalf("expected service stored via authorized route")
	}
}
