package i18n

import (
	"strings"
	"testing"
)

func TestLocalizerEnglish(t *testing.T) {
	l := NewLocalizer("en")

	if got := l.T("overview.namespaces_title"); got != "Namespaces" {
		t.Errorf("Expected 'Namespaces', got %q", got)
	}
	if got := l.T("overview.loading"); got != "Loading..." {
		t.Errorf("Expected 'Loading...', got %q", got)
	}
}

func TestLocalizerFallback(t *testing.T) {
	// Unknown locales resolve to English
	l := NewLocalizer("fr")
	if got := l.T("overview.loading"); got != "Loading..." {
		t.Errorf("Expected English fallback, got %q", got)
	}

	// Missing message IDs come back verbatim instead of failing
	if got := l.T("overview.does_not_exist"); got != "overview.does_not_exist" {
		t.Errorf("Expected message ID echo, got %q", got)
	}
}

func TestLocalizerChinese(t *testing.T) {
	for _, locale := range []string{"zh", "zh-CN", "zh_CN"} {
		l := NewLocalizer(locale)
		got := l.T("overview.namespaces_title")
		if got == "" || got == "Namespaces" {
			t.Errorf("Locale %s: expected a Chinese translation, got %q", locale, got)
		}
	}
}

func TestLocalizerTemplate(t *testing.T) {
	l := NewLocalizer("en")
	got := l.TF("msg.copied", map[string]interface{}{"Name": "kube-system"})
	if !strings.Contains(got, "kube-system") {
		t.Errorf("Template data not interpolated: %q", got)
	}
}
