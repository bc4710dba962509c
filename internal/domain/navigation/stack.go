// Package navigation holds the LIFO structures the host keeps on behalf of the
// page to recover in-form navigation across reloads.
package navigation

import "github.com/bnema/formbridge/internal/domain/entity"

// Stack is a LIFO of screen states. It is not safe for concurrent use; the
// owner serializes access.
type Stack struct {
	entries []entity.ScreenState
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{entries: make([]entity.ScreenState, 0)}
}

// Push appends an entry on top.
func (s *Stack) Push(state entity.ScreenState) {
	s.entries = append(s.entries, state)
}

// SetTop replaces the top entry in place. It returns false on an empty stack,
// where there is no entry to replace.
func (s *Stack) SetTop(state entity.ScreenState) bool {
	if len(s.entries) == 0 {
		return false
	}
	s.entries[len(s.entries)-1] = state
	return true
}

// Pop removes and returns the top entry, or nil when empty.
// A popped entry is gone; callers re-push it if they need it back.
func (s *Stack) Pop() *entity.ScreenState {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = entity.ScreenState{}
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns a copy of the top entry without removing it.
func (s *Stack) Peek() *entity.ScreenState {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	return &entry
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Entries returns a copy of the full history, bottom first.
func (s *Stack) Entries() []entity.ScreenState {
	out := make([]entity.ScreenState, len(s.entries))
	copy(out, s.entries)
	return out
}
