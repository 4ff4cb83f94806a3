package ops

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/tobybellwood/govcms-composer-test/pkg/data"
)

// LockRead loads the resolved lock snapshot along with the declared
// top-level requirements that scope which libraries get emitted.
type LockRead struct {
	common

	LockPath     string
	ManifestPath string
}

func (l *LockRead) Read() (*data.ComposerLock, data.Requirements, error) {
	lock, err := l.readLock()
	if err != nil {
		return nil, nil, err
	}

	required, err := l.readRequirements()
	if err != nil {
		return nil, nil, err
	}

	l.L().Debug("loaded lock snapshot",
		"packages", len(lock.Packages),
		"required", len(required),
	)

	return lock, required, nil
}

func (l *LockRead) readLock() (*data.ComposerLock, error) {
	f, err := os.Open(l.LockPath)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open lock snapshot")
	}

	defer f.Close()

	var lock data.ComposerLock

	err = json.NewDecoder(f).Decode(&lock)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", l.LockPath)
	}

	return &lock, nil
}

func (l *LockRead) readRequirements() (data.Requirements, error) {
	f, err := os.Open(l.ManifestPath)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open manifest")
	}

	defer f.Close()

	var manifest data.ComposerManifest

	err = json.NewDecoder(f).Decode(&manifest)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", l.ManifestPath)
	}

	required := make(data.Requirements)

	for name := range manifest.Require {
		required.Add(name)
	}

	return required, nil
}
