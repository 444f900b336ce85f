package value

import (
	"sort"
	"strings"
	"sync"
)

// HashTbl is the key-insertion-order preserving map from string to Value
// (spec.md §3.2). It is a shared-mutable handle: HashTbl(a) == HashTbl(b)
// compares by structural content (see equality.go), but two Values
// wrapping the *same* *HashTbl share mutations, matching the teacher's
// reference-counted, interior-locked container pattern (grounded on
// hive/dirty's shared handle shape).
type HashTbl struct {
	mu       sync.Mutex
	keys     []string // insertion order (or last-sorted order, when sortOnInsert)
	m        map[string]Value
	caseFold bool // default true: keys are folded to upper case
	sortIns  bool // stable alphabetical re-sort after each newly inserted key
}

// NewHashTbl constructs an empty hashtable. caseSensitive disables the
// default upper-case key folding; sortOnInsert enables the stable re-sort
// behavior described in spec.md §3.2.
func NewHashTbl(caseSensitive, sortOnInsert bool) *HashTbl {
	return &HashTbl{
		m:        make(map[string]Value),
		caseFold: !caseSensitive,
		sortIns:  sortOnInsert,
	}
}

// HashTblValue wraps h in a Value.
func HashTblValue(h *HashTbl) Value { return newRefValue(KindHashTbl, h) }

// AsHashTbl returns the handle if v holds one.
func (v Value) AsHashTbl() (*HashTbl, bool) {
	ref, ok := v.refOf(KindHashTbl)
	if !ok {
		return nil, false
	}
	h, ok := ref.(*HashTbl)
	return h, ok
}

func (h *HashTbl) normalize(key string) string {
	if h.caseFold {
		return strings.ToUpper(key)
	}
	return key
}

// Insert inserts or updates a key. A newly-inserted key triggers a stable
// re-sort of the key order when sortOnInsert is set (spec.md §3.2, §8.2 S2).
func (h *HashTbl) Insert(name string, val Value) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := h.normalize(name)
	_, existed := h.m[key]
	h.m[key] = val
	if !existed {
		h.keys = append(h.keys, key)
		if h.sortIns {
			sort.Strings(h.keys)
		}
	}
}

// Get returns the last-inserted value for name, or Empty on miss.
func (h *HashTbl) Get(name string) Value {
	h.mu.Lock()
	defer h.mu.Unlock()
	if val, ok := h.m[h.normalize(name)]; ok {
		return val
	}
	return Empty
}

// GetKeyAt returns the key at index (hash[i, HASH_KEY]), or Empty if out
// of range.
func (h *HashTbl) GetKeyAt(index int) Value {
	h.mu.Lock()
	defer h.mu.Unlock()
	if index < 0 || index >= len(h.keys) {
		return Empty
	}
	return String(h.keys[index])
}

// GetValueAt returns the value at index (hash[i, HASH_VAL]), or Empty if
// out of range.
func (h *HashTbl) GetValueAt(index int) Value {
	h.mu.Lock()
	defer h.mu.Unlock()
	if index < 0 || index >= len(h.keys) {
		return Empty
	}
	return h.m[h.keys[index]]
}

// Exists reports whether name is present (hash[key, HASH_EXISTS]).
func (h *HashTbl) Exists(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.m[h.normalize(name)]
	return ok
}

// Remove deletes name, reporting whether it was present
// (hash[key, HASH_REMOVE]).
func (h *HashTbl) Remove(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := h.normalize(name)
	if _, ok := h.m[key]; !ok {
		return false
	}
	delete(h.m, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes all entries (hash = HASH_REMOVEALL).
func (h *HashTbl) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys = nil
	h.m = make(map[string]Value)
}

// Len returns the number of entries.
func (h *HashTbl) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.keys)
}

// Keys returns the keys in current order.
func (h *HashTbl) Keys() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Values returns the values in key order.
func (h *HashTbl) Values() []Value {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Value, len(h.keys))
	for i, k := range h.keys {
		out[i] = h.m[k]
	}
	return out
}

func (h *HashTbl) equal(o *HashTbl) bool {
	if h == o {
		return true
	}
	h.mu.Lock()
	o.mu.Lock()
	defer h.mu.Unlock()
	defer o.mu.Unlock()
	if len(h.keys) != len(o.keys) {
		return false
	}
	for _, k := range h.keys {
		ov, ok := o.m[k]
		if !ok || !IsEqual(h.m[k], ov) {
			return false
		}
	}
	return true
}
