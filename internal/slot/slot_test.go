package slot

import (
	"errors"
	"slices"
	"testing"
)

func TestInsertAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		initial  []string
		path     string
		position int
		want     []string
	}{
		{"into middle", []string{"/a", "/b", "/c"}, "/d", 2, []string{"/a", "/d", "/b", "/c"}},
		{"at front", []string{"/a", "/b"}, "/c", 1, []string{"/c", "/a", "/b"}},
		{"at end", []string{"/a", "/b"}, "/c", 3, []string{"/a", "/b", "/c"}},
		{"clamped below", []string{"/a"}, "/b", -5, []string{"/b", "/a"}},
		{"clamped above", []string{"/a"}, "/b", 99, []string{"/a", "/b"}},
		{"empty list", nil, "/a", 1, []string{"/a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.initial)
			if err := l.InsertAt(tt.path, tt.position); err != nil {
				t.Fatalf("InsertAt(%q, %d) failed: %v", tt.path, tt.position, err)
			}
			if got := l.Paths(); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddRejectsDuplicate(t *testing.T) {
	t.Parallel()

	l := New([]string{"/a", "/b"})

	for _, add := range []func(string) error{l.AddFront, l.AddBack} {
		if err := add("/a"); !errors.Is(err, ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	}
	if err := l.InsertAt("/b", 1); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	// Rejected adds never change the list
	if l.Len() != 2 {
		t.Errorf("expected length 2 after rejected adds, got %d", l.Len())
	}
}

func TestAddFrontRemoveAtRoundTrip(t *testing.T) {
	t.Parallel()

	original := []string{"/a", "/b", "/c"}
	l := New(original)

	if err := l.AddFront("/new"); err != nil {
		t.Fatalf("AddFront() failed: %v", err)
	}
	removed, err := l.RemoveAt(1)
	if err != nil {
		t.Fatalf("RemoveAt(1) failed: %v", err)
	}
	if removed != "/new" {
		t.Errorf("RemoveAt(1) = %q, want %q", removed, "/new")
	}
	if got := l.Paths(); !slices.Equal(got, original) {
		t.Errorf("round trip changed list: got %v, want %v", got, original)
	}
}

func TestRemoveAtKeepsIndicesDense(t *testing.T) {
	t.Parallel()

	l := New([]string{"/a", "/b", "/c", "/d"})

	if _, err := l.RemoveAt(2); err != nil {
		t.Fatalf("RemoveAt(2) failed: %v", err)
	}

	want := []string{"/a", "/c", "/d"}
	if got := l.Paths(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// Every remaining position is addressable
	for i := 1; i <= l.Len(); i++ {
		if _, err := l.At(i); err != nil {
			t.Errorf("At(%d) failed after remove: %v", i, err)
		}
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	t.Parallel()

	l := New([]string{"/a"})

	for _, pos := range []int{0, -1, 2} {
		_, err := l.RemoveAt(pos)
		var idxErr *IndexError
		if !errors.As(err, &idxErr) {
			t.Errorf("RemoveAt(%d): expected *IndexError, got %v", pos, err)
			continue
		}
		if idxErr.Position != pos || idxErr.Len != 1 {
			t.Errorf("RemoveAt(%d): IndexError = %+v", pos, idxErr)
		}
	}
}

func TestRemoveByPath(t *testing.T) {
	t.Parallel()

	l := New([]string{"/a", "/b", "/c"})

	if err := l.RemoveByPath("/b"); err != nil {
		t.Fatalf("RemoveByPath() failed: %v", err)
	}
	if got, want := l.Paths(), []string{"/a", "/c"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := l.RemoveByPath("/missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMoveLeftRight(t *testing.T) {
	t.Parallel()

	l := New([]string{"/a", "/b", "/c"})

	if err := l.MoveRight("/a"); err != nil {
		t.Fatalf("MoveRight() failed: %v", err)
	}
	if got, want := l.Paths(), []string{"/b", "/a", "/c"}; !slices.Equal(got, want) {
		t.Errorf("after MoveRight: got %v, want %v", got, want)
	}

	if err := l.MoveLeft("/a"); err != nil {
		t.Fatalf("MoveLeft() failed: %v", err)
	}
	if got, want := l.Paths(), []string{"/a", "/b", "/c"}; !slices.Equal(got, want) {
		t.Errorf("after MoveLeft: got %v, want %v", got, want)
	}
}

func TestMoveBoundary(t *testing.T) {
	t.Parallel()

	l := New([]string{"/a", "/b"})

	if err := l.MoveLeft("/a"); !errors.Is(err, ErrBoundary) {
		t.Errorf("MoveLeft at position 1: expected ErrBoundary, got %v", err)
	}
	if err := l.MoveRight("/b"); !errors.Is(err, ErrBoundary) {
		t.Errorf("MoveRight at last position: expected ErrBoundary, got %v", err)
	}
	// Boundary moves leave the list unchanged
	if got, want := l.Paths(), []string{"/a", "/b"}; !slices.Equal(got, want) {
		t.Errorf("boundary move changed list: got %v, want %v", got, want)
	}

	if err := l.MoveLeft("/missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNextPrevWrap(t *testing.T) {
	t.Parallel()

	l := New([]string{"/a", "/b"})

	next, err := l.Next("/b")
	if err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if next != "/a" {
		t.Errorf("Next(/b) = %q, want /a", next)
	}

	prev, err := l.Prev("/a")
	if err != nil {
		t.Fatalf("Prev() failed: %v", err)
	}
	if prev != "/b" {
		t.Errorf("Prev(/a) = %q, want /b", prev)
	}
}

func TestNextPrevMutualInverses(t *testing.T) {
	t.Parallel()

	l := New([]string{"/a", "/b", "/c", "/d"})

	for _, start := range l.Paths() {
		next, err := l.Next(start)
		if err != nil {
			t.Fatalf("Next(%q) failed: %v", start, err)
		}
		back, err := l.Prev(next)
		if err != nil {
			t.Fatalf("Prev(%q) failed: %v", next, err)
		}
		if back != start {
			t.Errorf("Prev(Next(%q)) = %q, want %q", start, back, start)
		}
	}
}

func TestNextPrevUnknownCurrentFallsBackToFirst(t *testing.T) {
	t.Parallel()

	l := New([]string{"/a", "/b", "/c"})

	for name, step := range map[string]func(string) (string, error){
		"Next": l.Next,
		"Prev": l.Prev,
	} {
		got, err := step("/unknown")
		if err != nil {
			t.Fatalf("%s(unknown) failed: %v", name, err)
		}
		if got != "/a" {
			t.Errorf("%s(unknown) = %q, want /a", name, got)
		}
	}
}

func TestNextPrevEmptyList(t *testing.T) {
	t.Parallel()

	l := New(nil)

	if _, err := l.Next("/a"); !errors.Is(err, ErrEmpty) {
		t.Errorf("Next on empty list: expected ErrEmpty, got %v", err)
	}
	if _, err := l.Prev("/a"); !errors.Is(err, ErrEmpty) {
		t.Errorf("Prev on empty list: expected ErrEmpty, got %v", err)
	}
}

func TestSingleEntryNavigation(t *testing.T) {
	t.Parallel()

	l := New([]string{"/only"})

	next, err := l.Next("/only")
	if err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if next != "/only" {
		t.Errorf("Next on single entry = %q, want /only", next)
	}
}

func TestAt(t *testing.T) {
	t.Parallel()

	l := New([]string{"/a", "/b"})

	got, err := l.At(2)
	if err != nil {
		t.Fatalf("At(2) failed: %v", err)
	}
	if got != "/b" {
		t.Errorf("At(2) = %q, want /b", got)
	}

	if _, err := l.At(3); err == nil {
		t.Error("At(3): expected error for out-of-range position")
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	l := New([]string{"/a"})
	l.Replace([]string{"/x", "/y", "/x"}) // duplicates allowed via bulk path

	if got, want := l.Paths(), []string{"/x", "/y", "/x"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
