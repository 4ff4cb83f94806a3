package makefile

import (
	"fmt"
	"io"

	"github.com/tobybellwood/govcms-composer-test/pkg/data"
)

// Encode writes info in the legacy make format: one scalar assignment
// per line, nested structure flattened into bracketed keys, e.g.
//
//	projects[ctools][download][type] = git
//
// Ordered lists use numeric key suffixes.
func Encode(w io.Writer, info *data.MakeInfo) error {
	fmt.Fprintf(w, "core = %s\n", info.Core)
	fmt.Fprintf(w, "api = %d\n", info.API)

	if info.Subdir != "" {
		fmt.Fprintf(w, "defaults[projects][subdir] = %s\n", info.Subdir)
	}

	encodeSet(w, "projects", &info.Projects)
	encodeSet(w, "libraries", &info.Libraries)

	return nil
}

func encodeSet(w io.Writer, section string, set *data.ProjectSet) {
	for _, name := range set.Names() {
		p, _ := set.Get(name)

		if p.Type != "" {
			fmt.Fprintf(w, "%s[%s][type] = %s\n", section, name, p.Type)
		}

		if p.Version != "" {
			fmt.Fprintf(w, "%s[%s][version] = %s\n", section, name, p.Version)
		}

		if d := p.Download; d != nil {
			fmt.Fprintf(w, "%s[%s][download][type] = %s\n", section, name, d.Type)
			fmt.Fprintf(w, "%s[%s][download][url] = %s\n", section, name, d.URL)

			if d.Branch != "" {
				fmt.Fprintf(w, "%s[%s][download][branch] = %s\n", section, name, d.Branch)
			}

			if d.Revision != "" {
				fmt.Fprintf(w, "%s[%s][download][revision] = %s\n", section, name, d.Revision)
			}
		}

		for i, url := range p.Patches {
			fmt.Fprintf(w, "%s[%s][patch][%d] = %s\n", section, name, i, url)
		}
	}
}
