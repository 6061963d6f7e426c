package router

// StackEntry is one visited tab.
type StackEntry struct {
	Tab Tab
}

// Stack records tab history for back navigation.
type Stack struct {
	entries []StackEntry
}

// NewStack creates an empty history.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push records a visit to tab.
func (s *Stack) Push(tab Tab) {
	s.entries = append(s.entries, StackEntry{Tab: tab})
}

// Pop removes and returns the most recent entry, or nil when empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the most recent entry without removing it, or nil when empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Remove drops every entry for tab so a tab appears at most once.
func (s *Stack) Remove(tab Tab) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Tab != tab {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// IsEmpty returns true if the history has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the history.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the history.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
