package makefile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobybellwood/govcms-composer-test/pkg/data"
)

func TestEncode(t *testing.T) {
	t.Run("encodes a full document", func(t *testing.T) {
		info := &data.MakeInfo{
			Core:   "7.x",
			API:    2,
			Subdir: "contrib",
		}

		info.Projects.Set("ctools", &data.Project{
			Type: "module",
			Download: &data.Download{
				Type:     "git",
				URL:      "https://example/ctools.git",
				Branch:   "7.x-1.x",
				Revision: "def456",
			},
			Patches: []string{"http://p1", "http://p2"},
		})

		info.Projects.Set("views", &data.Project{
			Type:    "module",
			Version: "3.18",
		})

		info.Libraries.Set("dropzone", &data.Project{
			Type: "library",
			Download: &data.Download{
				Type: "get",
				URL:  "https://example/dropzone.zip",
			},
		})

		var buf bytes.Buffer

		err := Encode(&buf, info)
		require.NoError(t, err)

		expected := `core = 7.x
api = 2
defaults[projects][subdir] = contrib
projects[ctools][type] = module
projects[ctools][download][type] = git
projects[ctools][download][url] = https://example/ctools.git
projects[ctools][download][branch] = 7.x-1.x
projects[ctools][download][revision] = def456
projects[ctools][patch][0] = http://p1
projects[ctools][patch][1] = http://p2
projects[views][type] = module
projects[views][version] = 3.18
libraries[dropzone][type] = library
libraries[dropzone][download][type] = get
libraries[dropzone][download][url] = https://example/dropzone.zip
`

		assert.Equal(t, expected, buf.String())
	})

	t.Run("omits the defaults block when no subdir is set", func(t *testing.T) {
		info := &data.MakeInfo{
			Core: "7.x",
			API:  2,
		}

		info.Projects.Set("drupal", &data.Project{
			Version: "7.59",
		})

		var buf bytes.Buffer

		err := Encode(&buf, info)
		require.NoError(t, err)

		expected := `core = 7.x
api = 2
projects[drupal][version] = 7.59
`

		assert.Equal(t, expected, buf.String())
	})
}
