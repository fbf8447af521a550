package grace

// FrameStore keeps per-widget state across frames and forgets state for
// widgets that go a full frame without being touched. Panels that drop out
// of the current view (a closed detail sheet, a filtered-out card) release
// their scroll and editor state automatically.
type FrameStore[T any] struct {
	entries map[ID]*frameEntry[T]
	frame   uint64
}

type frameEntry[T any] struct {
	value     T
	lastFrame uint64
}

// NewFrameStore creates an empty store.
func NewFrameStore[T any]() *FrameStore[T] {
	return &FrameStore[T]{
		entries: make(map[ID]*frameEntry[T]),
	}
}

// scrollStates holds per-widget scroll positions, keyed by widget ID and
// swept at the end of every frame. A panel that stops drawing loses its
// scroll position one frame later.
var scrollStates = NewFrameStore[ScrollState]()

// Get returns the state for id, creating a zero value if absent, and marks
// it live for the current frame.
func (s *FrameStore[T]) Get(id ID) *T {
	e, ok := s.entries[id]
	if !ok {
		e = &frameEntry[T]{}
		s.entries[id] = e
	}
	e.lastFrame = s.frame
	return &e.value
}

// Peek returns the state for id without creating or touching it.
func (s *FrameStore[T]) Peek(id ID) (*T, bool) {
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	return &e.value, true
}

// Delete removes the state for id.
func (s *FrameStore[T]) Delete(id ID) {
	delete(s.entries, id)
}

// NextFrame advances the frame counter and drops entries not touched during
// the frame that just ended.
func (s *FrameStore[T]) NextFrame() {
	for id, e := range s.entries {
		if e.lastFrame < s.frame {
			delete(s.entries, id)
		}
	}
	s.frame++
}

// Len returns the number of live entries.
func (s *FrameStore[T]) Len() int {
	return len(s.entries)
}
