package poker

// FoldTracker records which actors have withdrawn from the current
// round. The set only grows; it is rebuilt fresh each round.
type FoldTracker struct {
	folded map[string]bool
}

// NewFoldTracker returns an empty tracker.
func NewFoldTracker() *FoldTracker {
	return &FoldTracker{folded: map[string]bool{}}
}

// Fold marks the actor inactive and records the withdrawal. Idempotent.
func (f *FoldTracker) Fold(a *Actor) {
	a.Active = false
	f.folded[a.Name] = true
}

// HasFolded reports whether the named actor withdrew this round.
func (f *FoldTracker) HasFolded(name string) bool {
	return f.folded[name]
}
