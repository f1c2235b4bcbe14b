package slot

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors returned by list operations. Callers match with
// [errors.Is] and translate them into user-facing messages.
var (
	// ErrDuplicate means the path is already in the list (add operations only).
	ErrDuplicate = errors.New("path already hooked")

	// ErrNotFound means the path is not in the list.
	ErrNotFound = errors.New("path not hooked")

	// ErrBoundary means a move would go past the first or last position.
	ErrBoundary = errors.New("already at list boundary")

	// ErrEmpty means navigation was attempted on an empty list.
	ErrEmpty = errors.New("no hooks in this context")
)

// IndexError reports a position outside the valid range of a list.
type IndexError struct {
	Position int
	Len      int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("position %d out of range (list has %d entries)", e.Position, e.Len)
}

// List is an ordered sequence of absolute file paths with 1-based positions.
// The zero value is an empty, usable list.
type List struct {
	paths []string
}

// New creates a list with the given paths in order.
// Callers are responsible for passing duplicate-free input (e.g., a
// persisted list or a validated bulk edit).
func New(paths []string) *List {
	return &List{paths: slices.Clone(paths)}
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.paths)
}

// Paths returns a copy of the entries in order.
func (l *List) Paths() []string {
	return slices.Clone(l.paths)
}

// indexOf returns the 0-based index of path, or -1.
func (l *List) indexOf(path string) int {
	return slices.Index(l.paths, path)
}

// Contains reports whether path is in the list.
func (l *List) Contains(path string) bool {
	return l.indexOf(path) != -1
}

// AddFront inserts path at position 1, shifting all entries up.
// Returns ErrDuplicate if path is already present.
func (l *List) AddFront(path string) error {
	return l.InsertAt(path, 1)
}

// AddBack appends path at position Len()+1.
// Returns ErrDuplicate if path is already present.
func (l *List) AddBack(path string) error {
	return l.InsertAt(path, len(l.paths)+1)
}

// InsertAt inserts path at the given 1-based position, shifting subsequent
// entries up. Positions are clamped to [1, Len()+1], so anything past the
// end behaves as append. Returns ErrDuplicate if path is already present.
func (l *List) InsertAt(path string, position int) error {
	if l.Contains(path) {
		return fmt.Errorf("%w: %s", ErrDuplicate, path)
	}
	if position < 1 {
		position = 1
	}
	if position > len(l.paths)+1 {
		position = len(l.paths) + 1
	}
	l.paths = slices.Insert(l.paths, position-1, path)
	return nil
}

// RemoveAt removes the entry at the given 1-based position, shifting
// subsequent entries down so positions stay contiguous.
// Returns the removed path, or an *IndexError if position is out of range.
func (l *List) RemoveAt(position int) (string, error) {
	if position < 1 || position > len(l.paths) {
		return "", &IndexError{Position: position, Len: len(l.paths)}
	}
	path := l.paths[position-1]
	l.paths = slices.Delete(l.paths, position-1, position)
	return path, nil
}

// RemoveByPath removes the first entry equal to path.
// Returns ErrNotFound if path is not in the list.
func (l *List) RemoveByPath(path string) error {
	i := l.indexOf(path)
	if i == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	_, err := l.RemoveAt(i + 1)
	return err
}

// MoveLeft swaps path with its predecessor.
// Returns ErrNotFound if path is absent, ErrBoundary if it is first.
func (l *List) MoveLeft(path string) error {
	return l.move(path, -1)
}

// MoveRight swaps path with its successor.
// Returns ErrNotFound if path is absent, ErrBoundary if it is last.
func (l *List) MoveRight(path string) error {
	return l.move(path, 1)
}

func (l *List) move(path string, dir int) error {
	i := l.indexOf(path)
	if i == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	j := i + dir
	if j < 0 || j >= len(l.paths) {
		return ErrBoundary
	}
	l.paths[i], l.paths[j] = l.paths[j], l.paths[i]
	return nil
}

// At returns the path at the given 1-based position, or an *IndexError.
func (l *List) At(position int) (string, error) {
	if position < 1 || position > len(l.paths) {
		return "", &IndexError{Position: position, Len: len(l.paths)}
	}
	return l.paths[position-1], nil
}

// Next returns the entry after current, wrapping from the last position to
// the first. If current is not in the list, returns the first entry.
// Returns ErrEmpty if the list is empty.
func (l *List) Next(current string) (string, error) {
	return l.step(current, 1)
}

// Prev returns the entry before current, wrapping from the first position
// to the last. If current is not in the list, returns the first entry.
// Returns ErrEmpty if the list is empty.
func (l *List) Prev(current string) (string, error) {
	return l.step(current, -1)
}

func (l *List) step(current string, dir int) (string, error) {
	n := len(l.paths)
	if n == 0 {
		return "", ErrEmpty
	}
	i := l.indexOf(current)
	if i == -1 {
		return l.paths[0], nil
	}
	return l.paths[(i+dir+n)%n], nil
}

// Replace swaps the list contents for paths, in order.
// Used by the bulk editor, which is allowed to introduce duplicates.
func (l *List) Replace(paths []string) {
	l.paths = slices.Clone(paths)
}
