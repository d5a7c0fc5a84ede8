package content

import (
	"context"
	"errors"
	"testing"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator(context.Background())
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	return v
}

func TestValidatorCompilesAllSchemas(t *testing.T) {
	v := newTestValidator(t)

	names := []string{
		"company-info",
		"team-member",
		"service",
		"portfolio-item",
		"contact-inquiry",
		"contact-payload",
		"site-config",
	}
	for _, name := range names {
		if _, ok := v.Schema(name); !ok {
			t.Errorf("schema %q not compiled", name)
		}
	}
}

func TestValidatorUnknownSchema(t *testing.T) {
	v := newTestValidator(t)
	if err := v.Validate(context.Background(), "no-such-schema", []byte(`{}`)); err == nil {
		t.Fatalf("expected error for unknown schema")
	}
}

func TestValidateContactPayload(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "Valid",
			doc:  `{"name":"Somchai","email":"somchai@example.com","subject":"Pricing","message":"How much?"}`,
		},
		{
			name: "ValidWithLanguage",
			doc:  `{"name":"Somchai","email":"somchai@example.com","subject":"Pricing","message":"How much?","language":"en"}`,
		},
		{
			name:    "MissingSubject",
			doc:     `{"name":"Somchai","email":"somchai@example.com","message":"How much?"}`,
			wantErr: true,
		},
		{
			name:    "EmptyName",
			doc:     `{"name":"","email":"somchai@example.com","subject":"Pricing","message":"How much?"}`,
			wantErr: true,
		},
		{
			name:    "BadLanguage",
			doc:     `{"name":"Somchai","email":"somchai@example.com","subject":"Pricing","message":"How much?","language":"fr"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, "contact-payload", []byte(tt.doc))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("expected ErrInvalid, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateValueService(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	valid := map[string]any{
		"id":           "service-1",
		"title":        map[string]string{"th": "พัฒนาเว็บไซต์", "en": "Web Development"},
		"description":  map[string]string{"th": "รายละเอียด", "en": "Details"},
		"features":     map[string]any{"th": []string{}, "en": []string{}},
		"technologies": []string{"Go"},
		"icon":         "🌐",
		"category":     "web",
		"order":        1,
		"isActive":     true,
	}
	if err := v.ValidateValue(ctx, "service", valid); err != nil {
		t.Fatalf("valid service rejected: %v", err)
	}

	valid["category"] = "desktop"
	if err := v.ValidateValue(ctx, "service", valid); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for bad category, got %v", err)
	}
}
