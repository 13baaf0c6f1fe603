// Package lifecycle holds the publication state shared by every
// admin-authored content type: a published flag gating public visibility
// and an independent featured flag used for ordering within published sets.
package lifecycle

// State is the publication state of a content record.
type State struct {
	Published bool
	Featured  bool
}

// TogglePublished flips the published flag.
func (s State) TogglePublished() State {
	s.Published = !s.Published
	return s
}

// ToggleFeatured flips the featured flag. Allowed regardless of published,
// but has no visible effect while the record is unpublished.
func (s State) ToggleFeatured() State {
	s.Featured = !s.Featured
	return s
}

// Public reports whether the record is visible on public endpoints.
// Featured has no visibility effect on its own.
func (s State) Public() bool {
	return s.Published
}
