package data

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ComposerLock mirrors the parts of a composer.lock snapshot the make
// generator consumes.
type ComposerLock struct {
	Packages []*LockedPackage `json:"packages"`
}

// LockedPackage is one resolved dependency from the lock snapshot.
type LockedPackage struct {
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	Version string        `json:"version"`
	Source  *SourceRef    `json:"source,omitempty"`
	Dist    *DistRef      `json:"dist,omitempty"`
	Extra   *PackageExtra `json:"extra,omitempty"`
}

// SourceRef is a version-control download location.
type SourceRef struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	Reference string `json:"reference"`
}

// DistRef is an archive download location.
type DistRef struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Shasum string `json:"shasum,omitempty"`
}

type PackageExtra struct {
	Patches PatchSet `json:"patches_applied,omitempty"`
}

type Patch struct {
	Name string
	URL  string
}

// PatchSet preserves the order patches appear in the lock file, which
// decoding into a plain map would lose.
type PatchSet []Patch

func (ps *PatchSet) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok == nil {
		return nil
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("patches_applied: expected an object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("patches_applied: expected a key, got %v", tok)
		}

		var url string

		err = dec.Decode(&url)
		if err != nil {
			return err
		}

		*ps = append(*ps, Patch{Name: name, URL: url})
	}

	_, err = dec.Token()
	return err
}

// ComposerManifest mirrors the declared top-level requirements of
// composer.json.
type ComposerManifest struct {
	Require map[string]string `json:"require"`
}

// Requirements is the set of explicitly required package names.
type Requirements map[string]struct{}

func (r Requirements) Has(name string) bool {
	_, ok := r[name]
	return ok
}

func (r Requirements) Add(name string) {
	r[name] = struct{}{}
}
