package ops

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/tobybellwood/govcms-composer-test/pkg/data"
	"github.com/tobybellwood/govcms-composer-test/pkg/makefile"
)

// Output file names consumed by the legacy packaging tool.
const (
	FullManifest = "drupal-org.make"
	CoreManifest = "drupal-org-core.make"
)

const fileHeader = "; Generated from composer.lock by lockmake. Do not edit.\n"

// MakeWrite persists both make documents into Dir. Both documents are
// rendered and staged before either is renamed into place, so a failed
// run leaves the previous output untouched.
type MakeWrite struct {
	common

	Dir string
}

func (m *MakeWrite) Write(full, core *data.MakeInfo) error {
	dir := m.Dir
	if dir == "" {
		dir = "."
	}

	files := []struct {
		name string
		info *data.MakeInfo
	}{
		{FullManifest, full},
		{CoreManifest, core},
	}

	var staged []string

	defer func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}()

	for _, file := range files {
		var buf bytes.Buffer

		buf.WriteString(fileHeader)

		err := makefile.Encode(&buf, file.info)
		if err != nil {
			return track(err)
		}

		f, err := ioutil.TempFile(dir, "."+file.name+"-")
		if err != nil {
			return track(err)
		}

		staged = append(staged, f.Name())

		_, err = f.Write(buf.Bytes())
		if cerr := f.Close(); err == nil {
			err = cerr
		}

		if err != nil {
			return track(err)
		}
	}

	for i, file := range files {
		path := filepath.Join(dir, file.name)

		err := os.Rename(staged[i], path)
		if err != nil {
			return track(err)
		}

		m.L().Debug("wrote make document", "path", path)
	}

	return nil
}
