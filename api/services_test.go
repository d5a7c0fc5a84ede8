package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/logicton/siteapi/api"
	"github.com/logicton/siteapi/pkg/models"
	"github.com/logicton/siteapi/pkg/repository/mock"
)

func decodeResponse(t *testing.T, body io.Reader) (bool, json.RawMessage) {
	t.Helper()
	var resp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Success, resp.Data
}

func TestServicesList(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.Services.Services = []models.Service{
		{ID: "service-1", Title: models.LocalizedText{Th: "เว็บ", En: "Web"}},
	}
	h := api.NewServicesHandler(mocks.Services)

	req := httptest.NewRequest(http.MethodGet, "/api/content/services", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	if cc := res.Header.Get("Cache-Control"); !strings.Contains(cc, "s-maxage=600") {
		t.Fatalf("expected cache header, got %q", cc)
	}

	ok, data := decodeResponse(t, res.Body)
	if !ok {
		t.Fatalf("expected success response")
	}
	var services []models.Service
	if err := json.Unmarshal(data, &services); err != nil {
		t.Fatalf("unmarshal services: %v", err)
	}
	if len(services) != 1 || services[0].ID != "service-1" {
		t.Fatalf("unexpected services: %+v", services)
	}
}

func TestServicesCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		check      func(t *testing.T, s models.Service)
	}{
		{
			name:       "InvalidJSON",
			body:       "nope",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingTitle",
			body:       map[string]any{"description": map[string]string{"th": "ก", "en": "a"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "MissingEnglishTitle",
			body: map[string]any{
				"title":       map[string]string{"th": "พัฒนาเว็บไซต์"},
				"description": map[string]string{"th": "ก", "en": "a"},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Defaults",
			body: map[string]any{
				"title":       map[string]string{"th": "พัฒนาเว็บไซต์", "en": "Web Development"},
				"description": map[string]string{"th": "รายละเอียด", "en": "Details"},
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, s models.Service) {
				if s.Icon != "🚀" {
					t.Errorf("expected default icon, got %q", s.Icon)
				}
				if s.Category != models.CategoryWeb {
					t.Errorf("expected default category web, got %q", s.Category)
				}
				if !s.IsActive {
					t.Errorf("expected new service active")
				}
				if s.Technologies == nil || s.Features.Th == nil || s.Features.En == nil {
					t.Errorf("expected empty lists, not null: %+v", s)
				}
			},
		},
		{
			name: "ExplicitFields",
			body: map[string]any{
				"title":        map[string]string{"th": "แอปมือถือ", "en": "Mobile Apps"},
				"description":  map[string]string{"th": "รายละเอียด", "en": "Details"},
				"icon":         "📱",
				"category":     "mobile",
				"technologies": []string{"Flutter"},
				"isActive":     false,
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, s models.Service) {
				if s.Icon != "📱" || s.Category != models.CategoryMobile {
					t.Errorf("explicit fields not honored: %+v", s)
				}
				if s.IsActive {
					t.Errorf("expected isActive false to be honored")
				}
				if len(s.Technologies) != 1 || s.Technologies[0] != "Flutter" {
					t.Errorf("unexpected technologies: %v", s.Technologies)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			h := api.NewServicesHandler(mocks.Services)

			var bodyReader io.Reader
			if s, ok := tt.body.(string); ok {
				bodyReader = strings.NewReader(s)
			} else {
				b, _ := json.Marshal(tt.body)
				bodyReader = bytes.NewReader(b)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/content/services", bodyReader)
			w := httptest.NewRecorder()
			h.Create(w, req)

			res := w.Result()
			defer res.Body.Close()
			if res.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d got %d", tt.wantStatus, res.StatusCode)
			}
			if tt.check != nil {
				_, data := decodeResponse(t, res.Body)
				var s models.Service
				if err := json.Unmarshal(data, &s); err != nil {
					t.Fatalf("unmarshal service: %v", err)
				}
				tt.check(t, s)
				if len(mocks.Services.Services) != 1 {
					t.Fatalf("expected service stored, have %d", len(mocks.Services.Services))
				}
			}
		})
	}
}

func TestServicesUpdate(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.Services.Services = []models.Service{{
		ID:          "service-1",
		Title:       models.LocalizedText{Th: "เดิม", En: "Old"},
		Description: models.LocalizedText{Th: "ก", En: "a"},
		Icon:        "🌐",
		Category:    models.CategoryWeb,
		Order:       1,
		IsActive:    true,
	}}
	h := api.NewServicesHandler(mocks.Services)

	body, _ := json.Marshal(map[string]any{"title": map[string]string{"th": "ใหม่", "en": "New"}})
	req := httptest.NewRequest(http.MethodPut, "/api/content/services/service-1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "service-1"})
	w := httptest.NewRecorder()
	h.Update(w, req)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	// untouched fields survive the merge
	got := mocks.Services.Services[0]
	if got.Title.En != "New" {
		t.Fatalf("title not updated: %+v", got)
	}
	if got.Icon != "🌐" || got.Order != 1 || !got.IsActive {
		t.Fatalf("merge clobbered fields: %+v", got)
	}
}

func TestServicesGetAndDeleteMissing(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewServicesHandler(mocks.Services)

	req := httptest.NewRequest(http.MethodGet, "/api/content/services/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	w := httptest.NewRecorder()
	h.Get(w, req)
	if w.Result().StatusCode != http.StatusNotFound {
		t.Fatalf("get missing: expected 404 got %d", w.Result().StatusCode)
	}

	req2 := httptest.NewRequest(http.MethodDelete, "/api/content/services/nope", nil)
	req2 = mux.SetURLVars(req2, map[string]string{"id": "nope"})
	w2 := httptest.NewRecorder()
	h.Delete(w2, req2)
	res2 := w2.Result()
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusNotFound {
		t.Fatalf("delete missing: expected 404 got %d", res2.StatusCode)
	}
	ok, _ := decodeResponse(t, res2.Body)
	if ok {
		t.Fatalf("expected success:false for missing delete")
	}
}
