package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/logicton/siteapi/api"
	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository/mock"
)

func TestCompanyGet(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewCompanyHandler(mocks.Company)

	// missing document
	req := httptest.NewRequest(http.MethodGet, "/api/content/company", nil)
	w := httptest.NewRecorder()
	h.Get(w, req)
	if w.Result().StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Result().StatusCode)
	}

	mocks.Company.Stored = &models.CompanyInfo{ID: "company-info", Name: "Logicton", FoundedYear: 2020}
	req = httptest.NewRequest(http.MethodGet, "/api/content/company", nil)
	w = httptest.NewRecorder()
	h.Get(w, req)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	if cc := res.Header.Get("Cache-Control"); !strings.Contains(cc, "s-maxage=300") {
		t.Fatalf("expected cache header, got %q", cc)
	}

	_, data := decodeResponse(t, res.Body)
	var info models.CompanyInfo
	if err := json.Unmarshal(data, &info); err != nil {
		t.Fatalf("unmarshal info: %v", err)
	}
	if info.Name != "Logicton" || info.FoundedYear != 2020 {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestCompanyUpdate(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewCompanyHandler(mocks.Company)

	body, _ := json.Marshal(models.CompanyInfo{ID: "company-info", Name: "Logicton", Location: "Bangkok"})
	req := httptest.NewRequest(http.MethodPut, "/api/content/company", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.Update(w, req)
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Result().StatusCode)
	}
	if mocks.Company.Stored == nil || mocks.Company.Stored.Location != "Bangkok" {
		t.Fatalf("update not stored: %+v", mocks.Company.Stored)
	}

	// invalid body
	req = httptest.NewRequest(http.MethodPut, "/api/content/company", strings.NewReader("nope"))
	w = httptest.NewRecorder()
	h.Update(w, req)
	if w.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Result().StatusCode)
	}
}

func TestSiteConfigHandlers(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewSiteConfigHandler(mocks.SiteConfig)

	req := httptest.NewRequest(http.MethodGet, "/api/content/site-config", nil)
	w := httptest.NewRecorder()
	h.Get(w, req)
	if w.Result().StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 before first write, got %d", w.Result().StatusCode)
	}

	cfg := models.SiteConfig{SiteName: models.LocalizedText{Th: "โลจิกตัน", En: "Logicton"}}
	body, _ := json.Marshal(cfg)
	req = httptest.NewRequest(http.MethodPut, "/api/content/site-config", bytes.NewReader(body))
	w = httptest.NewRecorder()
	h.Update(w, req)
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200 got %d", w.Result().StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/content/site-config", nil)
	w = httptest.NewRecorder()
	h.Get(w, req)
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200 got %d", res.StatusCode)
	}
	if cc := res.Header.Get("Cache-Control"); !strings.Contains(cc, "s-maxage=600") {
		t.Fatalf("expected cache header, got %q", cc)
	}

	_, data := decodeResponse(t, res.Body)
	var got models.SiteConfig
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	if got.SiteName.En != "Logicton" {
		t.Fatalf("unexpected config: %+v", got)
	}
}
