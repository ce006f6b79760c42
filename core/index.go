package core

import (
	"fmt"
	"strings"
	"sync"
)

// Index is a caller-owned, bidirectional label ↔ id table.
//
// ids holds label → id; labels holds id → label, so labels[id] is the label
// first interned as id. Both are guarded by mu.
type Index struct {
	mu     sync.RWMutex
	ids    map[string]int
	labels []string
}

// NewIndex creates an empty Index.
// Complexity: O(1).
func NewIndex() *Index {
	return &Index{ids: make(map[string]int)}
}

// Intern returns the id of label, assigning the next free id (Len()) when the
// label is new. Surrounding whitespace is trimmed before lookup.
// Complexity: O(1) amortized.
func (x *Index) Intern(label string) (int, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, ErrEmptyLabel
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if id, ok := x.ids[label]; ok {
		return id, nil
	}
	id := len(x.labels)
	x.ids[label] = id
	x.labels = append(x.labels, label)

	return id, nil
}

// ID looks up the id of an already interned label.
func (x *Index) ID(label string) (int, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	id, ok := x.ids[strings.TrimSpace(label)]

	return id, ok
}

// Label returns the label interned as id.
func (x *Index) Label(id int) (string, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if id < 0 || id >= len(x.labels) {
		return "", fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return x.labels[id], nil
}

// Len returns the number of distinct labels, which is also the next id.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return len(x.labels)
}

// Labels returns a copy of all labels in id order.
func (x *Index) Labels() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]string, len(x.labels))
	copy(out, x.labels)

	return out
}
