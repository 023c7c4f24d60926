package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// TreeStore is an in-process contract.TreeStore with the same value semantics
// as the hosted database: values are stored JSON-normalized, nulls and empty
// objects are never stored, and a nil merge value deletes the child.
type TreeStore struct {
	mu   sync.RWMutex
	root map[string]interface{}
}

func NewTreeStore() *TreeStore {
	return &TreeStore{root: map[string]interface{}{}}
}

// NewTreeStoreFrom seeds the store with an existing tree.
func NewTreeStoreFrom(seed map[string]interface{}) (*TreeStore, error) {
	s := NewTreeStore()
	if err := s.Write(context.Background(), "", seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *TreeStore) Read(ctx context.Context, path string) (interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var node interface{} = s.root
	for _, seg := range splitPath(path) {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, nil
		}
		node, ok = m[seg]
		if !ok {
			return nil, nil
		}
	}
	if m, ok := node.(map[string]interface{}); ok && len(m) == 0 {
		return nil, nil
	}
	return deepCopy(node), nil
}

func (s *TreeStore) Write(ctx context.Context, path string, value interface{}) error {
	v, err := normalize(value)
	if err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(splitPath(path), v)
	return nil
}

func (s *TreeStore) Merge(ctx context.Context, path string, fields map[string]interface{}) error {
	normalized := make(map[string]interface{}, len(fields))
	for k, raw := range fields {
		v, err := normalize(raw)
		if err != nil {
			return fmt.Errorf("merge %q: field %s: %w", path, k, err)
		}
		normalized[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	base := splitPath(path)
	for k, v := range normalized {
		child := append(append([]string{}, base...), splitPath(k)...)
		s.set(child, v)
	}
	return nil
}

func (s *TreeStore) Remove(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(splitPath(path), nil)
	return nil
}

func (s *TreeStore) Query(ctx context.Context, path, orderByField string, equalTo interface{}) (map[string]interface{}, error) {
	want, err := normalize(equalTo)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", path, err)
	}

	raw, err := s.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	children, _ := raw.(map[string]interface{})

	out := map[string]interface{}{}
	for key, child := range children {
		m, ok := child.(map[string]interface{})
		if !ok {
			continue
		}
		if got, ok := m[orderByField]; ok && reflect.DeepEqual(got, want) {
			out[key] = m
		}
	}
	return out, nil
}

// set stores v at segs, creating or replacing intermediate objects. A nil v
// deletes, and objects left empty on the way back up are pruned.
func (s *TreeStore) set(segs []string, v interface{}) {
	if len(segs) == 0 {
		m, _ := v.(map[string]interface{})
		if m == nil {
			m = map[string]interface{}{}
		}
		s.root = m
		return
	}
	setIn(s.root, segs, v)
}

func setIn(parent map[string]interface{}, segs []string, v interface{}) {
	key := segs[0]
	if len(segs) == 1 {
		if v == nil {
			delete(parent, key)
		} else {
			parent[key] = v
		}
		return
	}

	child, ok := parent[key].(map[string]interface{})
	if !ok {
		if v == nil {
			return
		}
		child = map[string]interface{}{}
		parent[key] = child
	}
	setIn(child, segs[1:], v)
	if len(child) == 0 {
		delete(parent, key)
	}
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalize round-trips v through JSON and drops nulls and empty objects.
func normalize(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return prune(out), nil
}

func prune(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, child := range t {
			if p := prune(child); p == nil {
				delete(t, k)
			} else {
				t[k] = p
			}
		}
		if len(t) == 0 {
			return nil
		}
		return t
	case []interface{}:
		for i := range t {
			t[i] = prune(t[i])
		}
		return t
	default:
		return v
	}
}

func deepCopy(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, child := range t {
			out[k] = deepCopy(child)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = deepCopy(t[i])
		}
		return out
	default:
		return v
	}
}
