package entity

import "sort"

// Hackathon is one row of the hackathon sheet. An empty field means the cell
// was missing or blank.
type Hackathon struct {
	Name      string
	Website   string
	StartDate string
	EndDate   string
	Deadline  string
	Status    string
	Place     string
	RespondBy string
	Notes     string
}

// NameSet is a set of hackathon names.
type NameSet map[string]struct{}

// NewNameSet builds a set from names, collapsing duplicates.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s NameSet) Len() int {
	return len(s)
}

// Sorted returns the names in lexicographic order.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the set.
func (s NameSet) Clone() NameSet {
	out := make(NameSet, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}
