package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSet(t *testing.T) {
	t.Run("iterates in insertion order", func(t *testing.T) {
		var s ProjectSet

		s.Set("zen", &Project{Type: "theme"})
		s.Set("ctools", &Project{Type: "module"})
		s.Set("views", &Project{Type: "module"})

		assert.Equal(t, []string{"zen", "ctools", "views"}, s.Names())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("replacing keeps the original position", func(t *testing.T) {
		var s ProjectSet

		s.Set("a", &Project{Version: "1.0"})
		s.Set("b", &Project{Version: "1.0"})
		s.Set("a", &Project{Version: "2.0"})

		assert.Equal(t, []string{"a", "b"}, s.Names())

		p, ok := s.Get("a")
		require.True(t, ok)
		assert.Equal(t, "2.0", p.Version)
	})

	t.Run("remove returns the entry and drops it", func(t *testing.T) {
		var s ProjectSet

		s.Set("drupal", &Project{Version: "7.59"})
		s.Set("ctools", &Project{Type: "module"})

		p, ok := s.Remove("drupal")
		require.True(t, ok)
		assert.Equal(t, "7.59", p.Version)

		_, ok = s.Get("drupal")
		assert.False(t, ok)
		assert.Equal(t, []string{"ctools"}, s.Names())

		_, ok = s.Remove("drupal")
		assert.False(t, ok)
	})
}
