package value

import "encoding/json"

// UObject is a JSON-backed dynamic tree (spec.md §4 supplemented
// feature, grounded on original_source's UObject/UChild). It wraps a
// decoded any-tree (map[string]any / []any / scalars) so script code can
// poke at JSON documents with path indexing; decoding is encoding/json's,
// and At resolves the JSON-pointer-like path syntax.
type UObject struct {
	root any
}

// NewUObject decodes src as JSON and wraps the result.
func NewUObject(src []byte) (*UObject, error) {
	var root any
	if err := json.Unmarshal(src, &root); err != nil {
		return nil, err
	}
	return &UObject{root: root}, nil
}

// NewUObjectFromAny wraps an already-decoded tree (e.g. produced by a
// COM-to-JSON bridge) directly.
func NewUObjectFromAny(root any) *UObject { return &UObject{root: root} }

// Root returns the decoded tree's root node.
func (u *UObject) Root() any { return u.root }

// At resolves a JSON-pointer-like path ("/a/b/0") against the tree,
// returning the child node and whether the path resolved.
func (u *UObject) At(path string) (any, bool) {
	return resolvePointer(u.root, path)
}

func resolvePointer(root any, path string) (any, bool) {
	if path == "" || path == "/" {
		return root, true
	}
	segs := splitPointer(path)
	cur := root
	for _, seg := range segs {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, ok := indexOf(seg)
			if !ok || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

func splitPointer(path string) []string {
	if len(path) > 0 && path[0] == '/' {
		path = path[1:]
	}
	if path == "" {
		return nil
	}
	var segs []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			segs = append(segs, path[start:i])
			start = i + 1
		}
	}
	segs = append(segs, path[start:])
	return segs
}

func indexOf(seg string) (int, bool) {
	n := 0
	if seg == "" {
		return 0, false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// MarshalJSON re-encodes the tree, used by Display and the json()
// builtin's round-trip.
func (u *UObject) MarshalJSON() ([]byte, error) { return json.Marshal(u.root) }

// UObjectValue wraps u in a Value.
func UObjectValue(u *UObject) Value { return newRefValue(KindJSON, u) }

// AsUObject returns the UObject payload and whether v holds one.
func (v Value) AsUObject() (*UObject, bool) {
	u, ok := v.ref.(*UObject)
	return u, ok && v.kind == KindJSON
}
