package data

// Download describes how the legacy packaging tool should fetch a
// project that is not pinned to a tagged release.
type Download struct {
	Type     string
	URL      string
	Branch   string
	Revision string
}

// Project is one entry in a make document, either under projects or
// under libraries. A project carries a version or a download block,
// never both.
type Project struct {
	Type     string
	Version  string
	Download *Download
	Patches  []string
}

// ProjectSet is an insertion-ordered project mapping. Emission follows
// lock order so repeated runs produce identical files.
type ProjectSet struct {
	names   []string
	entries map[string]*Project
}

func (s *ProjectSet) Set(name string, p *Project) {
	if s.entries == nil {
		s.entries = make(map[string]*Project)
	}

	if _, ok := s.entries[name]; !ok {
		s.names = append(s.names, name)
	}

	s.entries[name] = p
}

func (s *ProjectSet) Get(name string) (*Project, bool) {
	p, ok := s.entries[name]
	return p, ok
}

// Remove deletes name from the set and returns its project.
func (s *ProjectSet) Remove(name string) (*Project, bool) {
	p, ok := s.entries[name]
	if !ok {
		return nil, false
	}

	delete(s.entries, name)

	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}

	return p, true
}

func (s *ProjectSet) Len() int {
	return len(s.names)
}

// Names returns the entry names in insertion order.
func (s *ProjectSet) Names() []string {
	return s.names
}

// MakeInfo is one make document. Subdir is left empty for the
// core-only projection, which carries no defaults block.
type MakeInfo struct {
	Core      string
	API       int
	Subdir    string
	Projects  ProjectSet
	Libraries ProjectSet
}
