package component

import "github.com/milk9111/dayout/discovery"

type ProgressScope int

const (
	ProgressGlobal ProgressScope = iota
	ProgressScene
	ProgressSpecies
)

// ProgressCounter is recomputed from the discovery store every update.
// Scope lists the ids counted for global and scene counters; species
// counters count the sub-elements of Parent.
type ProgressCounter struct {
	Scope    ProgressScope
	IDs      []discovery.ID
	Parent   discovery.ID
	Found    int
	Total    int
	Text     string
	Complete bool
	// Celebrated is set once the completion banner has been scheduled.
	Celebrated bool
}

var ProgressCounterComponent = NewComponent[ProgressCounter]()
