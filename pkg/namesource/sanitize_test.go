package namesource_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/tmpnam/pkg/namesource"
)

func TestSanitizePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii passes through", "cache", "cache"},
		{"keeps allowed punctuation", "app_v1.2-rc", "app_v1.2-rc"},
		{"preserves case", "MyApp", "MyApp"},
		{"folds diacritics", "café", "cafe"},
		{"folds accents in words", "résumé", "resume"},
		{"folds mixed unicode", "Ünïcödé", "Unicode"},
		{"drops path separators", "a/b\\c", "abc"},
		{"drops spaces and symbols", "my temp*file?", "mytempfile"},
		{"drops nul bytes", "a\x00b", "ab"},
		{"trims surrounding dots", "..hidden.", "hidden"},
		{"single dot falls back", ".", "tmp"},
		{"double dot falls back", "..", "tmp"},
		{"empty falls back", "", "tmp"},
		{"only symbols falls back", "***", "tmp"},
		{"truncates long input", strings.Repeat("x", 100), strings.Repeat("x", 64)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, namesource.SanitizePrefix(tt.in))
		})
	}
}
