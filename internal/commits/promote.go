package commits

const (
	// PromotionNoteTitle is the note title that marks a maintainer-authored
	// promotion override.
	PromotionNoteTitle = "RELEASE AS"
	// PromotionNoteText is the note text required for a promotion override.
	PromotionNoteText = "1.0.0"
)

// IsPromotion reports whether c carries a promotion note. A promotion note
// forces every stable artifact straight to 1.0.0 regardless of the commit's
// conventional bump semantics.
func IsPromotion(c Commit) bool {
	for _, note := range c.Notes {
		if isPromotionNote(note) {
			return true
		}
	}
	return false
}

// WithoutPromotionNotes returns a copy of c with any promotion notes removed.
// The override must not also be reinterpreted by the generic bump strategy as
// an ordinary semantic signal.
func WithoutPromotionNotes(c Commit) Commit {
	if !IsPromotion(c) {
		return c
	}
	kept := make([]Note, 0, len(c.Notes))
	for _, note := range c.Notes {
		if isPromotionNote(note) {
			continue
		}
		kept = append(kept, note)
	}
	if len(kept) == 0 {
		kept = nil
	}
	c.Notes = kept
	return c
}

func isPromotionNote(n Note) bool {
	return n.Title == PromotionNoteTitle && n.Text == PromotionNoteText
}
