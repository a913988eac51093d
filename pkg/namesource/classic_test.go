package namesource_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tmpnam/pkg/namesource"
)

func TestClassicNext(t *testing.T) {
	t.Parallel()

	t.Run("generates prefix plus nine digits", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := namesource.NewClassic(namesource.Config{Dir: dir, Prefix: "app"})

		name, err := src.Next()
		require.NoError(t, err)

		want := `^` + regexp.QuoteMeta(filepath.Join(dir, "app")) + `\d{9}$`
		assert.Regexp(t, want, string(name))
	})

	t.Run("consecutive names differ", func(t *testing.T) {
		t.Parallel()

		src := namesource.NewClassic(namesource.Config{Dir: t.TempDir()})

		// The view aliases the internal buffer, so the first name must be
		// copied out before generating the next one.
		first, err := src.Next()
		require.NoError(t, err)
		firstCopy := string(first)

		second, err := src.Next()
		require.NoError(t, err)

		assert.NotEqual(t, firstCopy, string(second))
	})

	t.Run("empty config falls back to temp dir and tmp prefix", func(t *testing.T) {
		t.Parallel()

		src := namesource.NewClassic(namesource.Config{})

		name, err := src.Next()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(string(name), os.TempDir()))
		assert.Contains(t, filepath.Base(string(name)), "tmp")
	})

	t.Run("sanitizes configured prefix", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := namesource.NewClassic(namesource.Config{Dir: dir, Prefix: "my temp/.."})

		name, err := src.Next()
		require.NoError(t, err)

		assert.Equal(t, dir, filepath.Dir(string(name)))
		assert.True(t, strings.HasPrefix(filepath.Base(string(name)), "mytemp"))
	})
}
