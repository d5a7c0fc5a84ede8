package i18n_test

import (
	"testing"

	"github.com/logicton/siteapi/internal/i18n"
	"github.com/logicton/siteapi/pkg/models"
)

func TestResolveAcceptLanguage(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   i18n.Locale
	}{
		{"Empty_DefaultsThai", "", i18n.Thai},
		{"ThaiPreferred", "th-TH,th;q=0.9,en;q=0.8", i18n.Thai},
		{"ThaiAnywhere", "en-US,en;q=0.9,th;q=0.5", i18n.Thai},
		{"EnglishOnly", "en-US,en;q=0.9", i18n.English},
		{"OtherLanguage", "fr-FR,fr;q=0.9", i18n.English},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := i18n.ResolveAcceptLanguage(tc.header); got != tc.want {
				t.Fatalf("ResolveAcceptLanguage(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path     string
		want     i18n.Locale
		wantRest string
	}{
		{"/th/about", i18n.Thai, "/about"},
		{"/en/portfolio/p-1", i18n.English, "/portfolio/p-1"},
		{"/about", i18n.Thai, "/about"},
		{"/", i18n.Thai, "/"},
	}
	for _, tc := range tests {
		loc, rest := i18n.FromPath(tc.path)
		if loc != tc.want || rest != tc.wantRest {
			t.Fatalf("FromPath(%q) = %q, %q, want %q, %q", tc.path, loc, rest, tc.want, tc.wantRest)
		}
	}
}

func TestLocalized_FallbackChain(t *testing.T) {
	both := models.LocalizedText{Th: "ไทย", En: "english"}
	if got := i18n.Localized(both, i18n.Thai); got != "ไทย" {
		t.Fatalf("expected Thai value, got %q", got)
	}
	if got := i18n.Localized(both, i18n.English); got != "english" {
		t.Fatalf("expected English value, got %q", got)
	}

	noThai := models.LocalizedText{En: "english"}
	if got := i18n.Localized(noThai, i18n.Thai); got != "english" {
		t.Fatalf("expected English fallback, got %q", got)
	}

	noEnglish := models.LocalizedText{Th: "ไทย"}
	if got := i18n.Localized(noEnglish, i18n.English); got != "ไทย" {
		t.Fatalf("expected Thai fallback, got %q", got)
	}

	if got := i18n.Localized(models.LocalizedText{}, i18n.Thai); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestOpposite(t *testing.T) {
	if i18n.Opposite(i18n.Thai) != i18n.English || i18n.Opposite(i18n.English) != i18n.Thai {
		t.Fatal("Opposite mapping wrong")
	}
}
