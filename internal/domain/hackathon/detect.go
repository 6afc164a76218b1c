package hackathon

import (
	"sort"

	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
)

// Names returns the set of hackathon names in records.
func Names(records []entity.Hackathon) entity.NameSet {
	set := make(entity.NameSet, len(records))
	for _, h := range records {
		set[h.Name] = struct{}{}
	}
	return set
}

// NewNames returns the names of current that are not tracked yet, sorted.
func NewNames(current, tracked entity.NameSet) []string {
	var names []string
	for name := range current {
		if !tracked.Has(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ByName indexes records by name. The first row wins for duplicated names.
func ByName(records []entity.Hackathon) map[string]entity.Hackathon {
	out := make(map[string]entity.Hackathon, len(records))
	for _, h := range records {
		if _, ok := out[h.Name]; ok {
			continue
		}
		out[h.Name] = h
	}
	return out
}
