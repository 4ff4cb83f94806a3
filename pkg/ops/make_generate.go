package ops

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/tobybellwood/govcms-composer-test/pkg/data"
)

// Fixed metadata carried by every emitted document.
const (
	coreVersion   = "7.x"
	apiVersion    = 2
	contribSubdir = "contrib"
)

const (
	vendorPrefix = "drupal/"

	// The platform core is always stored under this key, whatever
	// its package name was.
	coreProject = "drupal"

	devMarker         = "dev"
	branchAliasPrefix = "dev-"
)

// Package type tags recognized by the classifier. Anything else in the
// lock is ignored.
const (
	typeCore    = "drupal-core"
	typeModule  = "drupal-module"
	typeTheme   = "drupal-theme"
	typeProfile = "drupal-profile"
	typeLibrary = "drupal-library"
	typeBower   = "bower-asset"
	typeNpm     = "npm-asset"
)

var shortTypes = map[string]string{
	typeCore:    "core",
	typeModule:  "module",
	typeTheme:   "theme",
	typeProfile: "profile",
}

// tagPattern matches a MAJOR.MINOR.PATCH release tag with an optional
// -SUFFIX such as -alpha1.
var tagPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.\d+(-.+)?$`)

type classification int

const (
	classIgnore classification = iota
	classProject
	classLibrary
)

// MakeGenerate converts a lock snapshot into the two legacy make
// documents: the full manifest and the core-only projection. The two
// are disjoint; the platform core entry lives only in the projection.
type MakeGenerate struct {
	common
}

func (g *MakeGenerate) Generate(lock *data.ComposerLock, required data.Requirements) (*data.MakeInfo, *data.MakeInfo, error) {
	full := &data.MakeInfo{
		Core:   coreVersion,
		API:    apiVersion,
		Subdir: contribSubdir,
	}

	for _, pkg := range lock.Packages {
		short := shortName(pkg.Name)

		switch classify(pkg, short, required) {
		case classProject:
			proj, err := g.project(pkg)
			if err != nil {
				return nil, nil, err
			}

			key := short

			if pkg.Type == typeCore {
				key = coreProject
				proj.Type = ""
			}

			full.Projects.Set(key, proj)
		case classLibrary:
			lib, err := g.project(pkg)
			if err != nil {
				return nil, nil, err
			}

			lib.Type = "library"

			full.Libraries.Set(short, lib)
		default:
			g.L().Debug("ignoring package", "name", pkg.Name, "type", pkg.Type)
		}
	}

	core, ok := full.Projects.Remove(coreProject)
	if !ok {
		return nil, nil, errors.Errorf("lock snapshot contains no %s package", typeCore)
	}

	coreDoc := &data.MakeInfo{
		Core: coreVersion,
		API:  apiVersion,
	}

	coreDoc.Projects.Set(coreProject, core)

	return full, coreDoc, nil
}

// classify decides where a locked package lands. Platform packages
// under the drupal vendor always ship; themes from other vendors and
// asset libraries ship only when the project required them directly.
func classify(pkg *data.LockedPackage, short string, required data.Requirements) classification {
	switch pkg.Type {
	case typeCore, typeModule, typeProfile:
		if strings.HasPrefix(pkg.Name, vendorPrefix) {
			return classProject
		}

		return classIgnore
	case typeTheme:
		if strings.HasPrefix(pkg.Name, vendorPrefix) {
			return classProject
		}

		if required.Has(short) || required.Has(pkg.Name) {
			return classProject
		}

		return classIgnore
	case typeLibrary, typeBower, typeNpm:
		if required.Has(short) || required.Has(pkg.Name) {
			return classLibrary
		}

		return classIgnore
	default:
		return classIgnore
	}
}

func (g *MakeGenerate) project(pkg *data.LockedPackage) (*data.Project, error) {
	proj := &data.Project{
		Type: shortTypes[pkg.Type],
	}

	dl := download(pkg)

	if strings.Contains(pkg.Version, devMarker) {
		if dl == nil {
			return nil, errors.Errorf("package %s needs a download source for %s but has neither source nor dist", pkg.Name, pkg.Version)
		}

		dl.Branch = strings.TrimPrefix(pkg.Version, branchAliasPrefix)
		proj.Download = dl
	} else {
		version := pkg.Version

		if pkg.Type != typeCore {
			v, err := rewriteVersion(pkg.Version)
			if err != nil {
				return nil, errors.Wrapf(err, "package %s", pkg.Name)
			}

			version = v
		}

		proj.Version = version

		// A tagged release resolved from version control needs no
		// download block; a dist-only archive keeps its url.
		if dl != nil && dl.Type == "git" {
			dl = nil
		}

		proj.Download = dl
	}

	if pkg.Extra != nil {
		for _, patch := range pkg.Extra.Patches {
			proj.Patches = append(proj.Patches, patch.URL)
		}
	}

	return proj, nil
}

func download(pkg *data.LockedPackage) *data.Download {
	switch {
	case pkg.Source != nil:
		return &data.Download{
			Type:     "git",
			URL:      pkg.Source.URL,
			Revision: pkg.Source.Reference,
		}
	case pkg.Dist != nil:
		return &data.Download{
			Type: "get",
			URL:  pkg.Dist.URL,
		}
	default:
		return nil
	}
}

// rewriteVersion converts a release tag into the legacy
// MAJOR.MINOR[-SUFFIX] scheme, dropping the patch component:
// 8.1.0-alpha1 becomes 8.1-alpha1.
func rewriteVersion(version string) (string, error) {
	m := tagPattern.FindStringSubmatch(version)
	if m == nil {
		return "", errors.Errorf("malformed release version %q", version)
	}

	return m[1] + "." + m[2] + m[3], nil
}

func shortName(name string) string {
	if idx := strings.IndexByte(name, '/'); idx >= 0 {
		return name[idx+1:]
	}

	return name
}
