// Package index builds bidirectional id/name lookup tables from a single
// listing of console entities.
package index

import "nexpose-cli/pkg/models"

// Index maps ids to names and names back to ids for one snapshot.
// When a name occurs more than once, byName keeps the last id seen.
type Index[K comparable] struct {
	byID       map[K]string
	byName     map[string]K
	duplicates []string
}

// Build indexes entities in order. It never fails on duplicate names;
// they are recorded and reported by Duplicates.
func Build[K comparable, E models.Entity[K]](entities []E) *Index[K] {
	ix := &Index[K]{
		byID:   make(map[K]string, len(entities)),
		byName: make(map[string]K, len(entities)),
	}
	seen := make(map[string]bool)
	for _, e := range entities {
		id, name := e.EntityID(), e.EntityName()
		ix.byID[id] = name
		if prev, ok := ix.byName[name]; ok && prev != id && !seen[name] {
			ix.duplicates = append(ix.duplicates, name)
			seen[name] = true
		}
		ix.byName[name] = id
	}
	return ix
}

// Name returns the name recorded for id.
func (ix *Index[K]) Name(id K) (string, bool) {
	name, ok := ix.byID[id]
	return name, ok
}

// ID returns the id recorded for name.
func (ix *Index[K]) ID(name string) (K, bool) {
	id, ok := ix.byName[name]
	return id, ok
}

// ByID returns a copy of the id to name mapping.
func (ix *Index[K]) ByID() map[K]string {
	out := make(map[K]string, len(ix.byID))
	for k, v := range ix.byID {
		out[k] = v
	}
	return out
}

// ByName returns a copy of the name to id mapping.
func (ix *Index[K]) ByName() map[string]K {
	out := make(map[string]K, len(ix.byName))
	for k, v := range ix.byName {
		out[k] = v
	}
	return out
}

// Duplicates lists names that were bound to more than one id, in the
// order the clash was first seen.
func (ix *Index[K]) Duplicates() []string {
	return append([]string(nil), ix.duplicates...)
}

func (ix *Index[K]) Len() int { return len(ix.byID) }

// KeySet collects the ids of entities into a set suitable for IsValid.
func KeySet[K comparable, E models.Entity[K]](entities []E) map[K]struct{} {
	set := make(map[K]struct{}, len(entities))
	for _, e := range entities {
		set[e.EntityID()] = struct{}{}
	}
	return set
}

// IsValid reports whether candidate is one of the known ids.
func IsValid[K comparable](candidate K, known map[K]struct{}) bool {
	_, ok := known[candidate]
	return ok
}
