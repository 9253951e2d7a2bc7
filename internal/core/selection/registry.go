package selection

// Registry holds at most one open dialog. Opening a new dialog discards the
// previous one without committing it.
type Registry struct {
	current *State
}

// Current returns the open dialog, or nil. A dialog that closed itself is
// dropped from the slot.
func (r *Registry) Current() *State {
	if r.current != nil && r.current.Closed() {
		r.current = nil
	}
	return r.current
}

// Open makes s the open dialog.
func (r *Registry) Open(s *State) {
	if cur := r.Current(); cur != nil && cur != s {
		cur.Discard()
	}
	r.current = s
}

// Close discards the open dialog, if any.
func (r *Registry) Close() {
	if cur := r.Current(); cur != nil {
		cur.Discard()
	}
	r.current = nil
}

// Toggle closes the open dialog when there is one, otherwise opens the
// dialog built by open. It returns the dialog left open, or nil.
func (r *Registry) Toggle(open func() *State) *State {
	if r.Current() != nil {
		r.Close()
		return nil
	}
	r.current = open()
	return r.current
}
