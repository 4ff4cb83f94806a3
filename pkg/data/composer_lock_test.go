package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchSet(t *testing.T) {
	t.Run("preserves declaration order", func(t *testing.T) {
		raw := `{"zzz last": "http://p1", "aaa first": "http://p2", "mmm middle": "http://p3"}`

		var ps PatchSet

		err := json.Unmarshal([]byte(raw), &ps)
		require.NoError(t, err)

		require.Equal(t, 3, len(ps))

		assert.Equal(t, "zzz last", ps[0].Name)
		assert.Equal(t, "http://p1", ps[0].URL)
		assert.Equal(t, "http://p2", ps[1].URL)
		assert.Equal(t, "http://p3", ps[2].URL)
	})

	t.Run("accepts null", func(t *testing.T) {
		var ps PatchSet

		err := json.Unmarshal([]byte(`null`), &ps)
		require.NoError(t, err)

		assert.Equal(t, 0, len(ps))
	})

	t.Run("rejects a non-object value", func(t *testing.T) {
		var ps PatchSet

		err := json.Unmarshal([]byte(`["http://p1"]`), &ps)
		require.Error(t, err)
	})
}
