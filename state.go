package grace

// Common state types persisted across frames via FrameStore.

// ScrollState tracks scroll position for scrollable areas.
type ScrollState struct {
	ScrollY       float32 // Current scroll position
	TargetScrollY float32 // Target for smooth scrolling
	ContentHeight float32 // Total content height
}

// UpdateSmooth smoothly interpolates scroll position toward target.
// Call this each frame with the frame's delta time.
// Returns true if still animating.
func (s *ScrollState) UpdateSmooth(deltaTime float32) bool {
	const smoothSpeed = 15.0 // Higher = faster convergence
	const threshold = 0.5    // Stop animating when this close

	diff := s.TargetScrollY - s.ScrollY
	if absf32(diff) < threshold {
		s.ScrollY = s.TargetScrollY
		return false
	}

	s.ScrollY += diff * deltaTime * smoothSpeed
	return true
}

// EditorState tracks state for the memo editor and the search box.
// Supports cursor positioning and undo/redo.
type EditorState struct {
	// Editing indicates whether the widget captures keyboard input.
	Editing bool

	// Cursor position (in runes, not bytes)
	CursorPos int

	// Vertical scroll offset for memo text taller than the panel
	ScrollOffset float32

	// Undo/redo stack
	UndoStack []string // Previous text states
	UndoIndex int      // Current position in undo stack

	// Cursor blink state (managed internally)
	CursorBlinkTime float32

	// Time since the text last changed, for debounced auto-save
	SinceEdit float32
	Dirty     bool
}

// PushUndo saves the current text to the undo stack.
// Call this before making changes to the text.
func (s *EditorState) PushUndo(text string) {
	const maxUndoSize = 50

	// If we're not at the end of the stack, truncate forward history
	if s.UndoIndex < len(s.UndoStack) {
		s.UndoStack = s.UndoStack[:s.UndoIndex]
	}

	// Avoid duplicate entries
	if len(s.UndoStack) > 0 && s.UndoStack[len(s.UndoStack)-1] == text {
		return
	}

	s.UndoStack = append(s.UndoStack, text)
	s.UndoIndex = len(s.UndoStack)

	// Limit stack size
	if len(s.UndoStack) > maxUndoSize {
		s.UndoStack = s.UndoStack[1:]
		s.UndoIndex--
	}
}

// Undo returns the previous text state, if any.
func (s *EditorState) Undo(currentText string) (string, bool) {
	// Save current state if at end of stack
	if s.UndoIndex == len(s.UndoStack) && len(s.UndoStack) > 0 {
		if s.UndoStack[len(s.UndoStack)-1] != currentText {
			s.UndoStack = append(s.UndoStack, currentText)
		}
	}

	if s.UndoIndex > 0 {
		s.UndoIndex--
		return s.UndoStack[s.UndoIndex], true
	}
	return "", false
}

// Redo returns the next text state, if any.
func (s *EditorState) Redo() (string, bool) {
	if s.UndoIndex < len(s.UndoStack)-1 {
		s.UndoIndex++
		return s.UndoStack[s.UndoIndex], true
	}
	return "", false
}

// CanUndo returns true if undo is available.
func (s *EditorState) CanUndo() bool {
	return s.UndoIndex > 0
}

// CanRedo returns true if redo is available.
func (s *EditorState) CanRedo() bool {
	return s.UndoIndex < len(s.UndoStack)-1
}

// MarkEdited flags the editor dirty and restarts the auto-save timer.
func (s *EditorState) MarkEdited() {
	s.Dirty = true
	s.SinceEdit = 0
}

// TickAutoSave advances the auto-save timer and reports whether a save
// should fire: the text is dirty and delay seconds have elapsed since the
// last edit. The dirty flag clears when this returns true.
func (s *EditorState) TickAutoSave(deltaTime, delay float32) bool {
	if !s.Dirty {
		return false
	}
	s.SinceEdit += deltaTime
	if s.SinceEdit < delay {
		return false
	}
	s.Dirty = false
	return true
}
