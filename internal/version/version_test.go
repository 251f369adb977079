package version

import (
	"strings"
	"testing"
)

func TestInfoDefaults(t *testing.T) {
	v, c, d := Info()
	if v != "dev" || c != "unknown" || d != "unknown" {
		t.Fatalf("неожиданные значения по умолчанию: %s %s %s", v, c, d)
	}
}

func TestStringContainsAllFields(t *testing.T) {
	s := String()
	for _, part := range []string{"version=", "commit=", "date="} {
		if !strings.Contains(s, part) {
			t.Errorf("в строке версии нет %q: %s", part, s)
		}
	}
}
