package domain

import (
	"strings"
	"testing"
)

func TestPeekModuleDocstring_SingleLine(t *testing.T) {
	body := []string{`"""Payment gateway client."""`, "", "import os"}
	if got := PeekModuleDocstring(body); got != "Payment gateway client." {
		t.Fatalf("got %q", got)
	}
}

func TestPeekModuleDocstring_MultiLine(t *testing.T) {
	body := []string{
		`"""`,
		"Payment gateway client.",
		"",
		"Retries on 503.",
		`"""`,
		"import os",
	}
	if got := PeekModuleDocstring(body); got != "Payment gateway client. Retries on 503." {
		t.Fatalf("got %q", got)
	}
}

func TestPeekModuleDocstring_SkipsLeadingBlanks(t *testing.T) {
	body := []string{"", "", `'''hello'''`}
	if got := PeekModuleDocstring(body); got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestPeekModuleDocstring_NotFirstStatement(t *testing.T) {
	body := []string{"import os", `"""not a module docstring"""`}
	if got := PeekModuleDocstring(body); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestPeekModuleDocstring_Capped(t *testing.T) {
	body := []string{`"""` + strings.Repeat("words and more ", 40) + `"""`}
	got := PeekModuleDocstring(body)
	if len([]rune(got)) > docstringCap {
		t.Fatalf("hint exceeds cap: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, truncationMark) {
		t.Fatalf("expected truncation marker, got %q", got)
	}
}
