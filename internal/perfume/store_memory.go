package perfume

import (
	"context"
	"strings"
	"sync"
)

var _ Store = (*MemStore)(nil)

type MemStore struct {
	mu       sync.RWMutex
	perfumes []Perfume
}

func NewMemStore(seed ...Perfume) *MemStore {
	s := &MemStore{perfumes: make([]Perfume, 0, len(seed))}
	s.perfumes = append(s.perfumes, seed...)
	return s
}

// NewStore returns a memory store preloaded with the default catalog.
func NewStore() *MemStore {
	return NewMemStore(SeedPerfumes()...)
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.perfumes)
}

func (s *MemStore) List(ctx context.Context) ([]Perfume, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.perfumes) == 0 {
		return nil, false
	}

	out := make([]Perfume, len(s.perfumes))
	copy(out, s.perfumes)
	return out, true
}

func (s *MemStore) FindByType(ctx context.Context, typ string) ([]Perfume, bool) {
	return s.filter(func(p Perfume) bool { return strings.EqualFold(p.Type, typ) })
}

func (s *MemStore) FindByName(ctx context.Context, name string) ([]Perfume, bool) {
	return s.filter(func(p Perfume) bool { return strings.EqualFold(p.Name, name) })
}

func (s *MemStore) Create(ctx context.Context, p Perfume) Perfume {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.perfumes = append(s.perfumes, p)
	return p
}

// Update overwrites only the first record whose name matches.
func (s *MemStore) Update(ctx context.Context, name string, p Perfume) (Perfume, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.perfumes {
		if strings.EqualFold(s.perfumes[i].Name, name) {
			s.perfumes[i] = p
			return s.perfumes[i], true
		}
	}
	return Perfume{}, false
}

// Delete removes every record whose name matches.
func (s *MemStore) Delete(ctx context.Context, name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, p := range s.perfumes {
		if !strings.EqualFold(p.Name, name) {
			s.perfumes[n] = p
			n++
		}
	}
	if n == len(s.perfumes) {
		return "", false
	}

	clear(s.perfumes[n:])
	s.perfumes = s.perfumes[:n]
	return name + " has been removed from the list...", true
}

func (s *MemStore) filter(match func(Perfume) bool) ([]Perfume, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Perfume
	for _, p := range s.perfumes {
		if match(p) {
			out = append(out, p)
		}
	}
	return out, len(out) > 0
}
