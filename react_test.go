package react

// surface is a minimal rendered output used across the tests: commits
// apply the buffered updates, then re-render a single string from state.
type surface struct {
	render   func() string
	rendered string
	commits  int
	lanes    []Lane
}

func newSurface(render func() string) *surface {
	return &surface{render: render, rendered: render()}
}

func (s *surface) Commit(updates []Update, lane Lane) {
	for _, u := range updates {
		u()
	}

	s.rendered = s.render()
	s.commits++
	s.lanes = append(s.lanes, lane)
}
