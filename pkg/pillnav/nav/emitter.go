package nav

// Listener receives the newly selected index.
type Listener func(index int)

// Emitter forwards selection changes to an optional listener.
type Emitter struct {
	listener Listener
}

// Set replaces the listener. nil disables notification.
func (e *Emitter) Set(l Listener) {
	e.listener = l
}

// Emit calls the listener, if any. A panicking listener is not recovered.
func (e *Emitter) Emit(index int) {
	if e.listener != nil {
		e.listener(index)
	}
}
