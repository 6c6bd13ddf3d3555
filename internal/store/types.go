package store

import "time"

// Relationship is one undirected friendship edge between two ENS names.
// NameA and NameB hold the canonical pair: NameA < NameB under plain
// string comparison, and never equal. IDs are assigned by the backend
// and never reused.
type Relationship struct {
	ID        int64
	NameA     string
	NameB     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Seed relationships used by tests and first-run bootstrap: a triangle
// between three well-known names. Pairs are stored pre-canonicalized.
var SeedRelationships = [][2]string{
	{"nick.eth", "vitalik.eth"},
	{"brantly.eth", "vitalik.eth"},
	{"brantly.eth", "nick.eth"},
}
