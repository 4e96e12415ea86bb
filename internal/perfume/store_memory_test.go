package perfume

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_ListReturnsSeedInOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	got, ok := s.List(ctx)
	require.True(t, ok)
	assert.Equal(t, SeedPerfumes(), got)
	assert.Len(t, got, 15)
}

func TestMemStore_ListEmpty(t *testing.T) {
	got, ok := NewMemStore().List(context.Background())
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestMemStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	got, _ := s.List(ctx)
	got[0].Price = 1

	again, _ := s.List(ctx)
	assert.Equal(t, 699, again[0].Price)
}

func TestMemStore_FindByType(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	lower, ok := s.FindByType(ctx, "eau de parfum")
	require.True(t, ok)
	mixed, ok := s.FindByType(ctx, "Eau De Parfum")
	require.True(t, ok)

	assert.Equal(t, lower, mixed)
	names := make([]string, 0, len(lower))
	for _, p := range lower {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"Bellavita, CEO Man",
		"EM5, Pause",
		"Wild Stone, Edge",
		"The Man Company, Hope",
		"Beardo, Whisky Smoke",
	}, names)
}

func TestMemStore_FindByTypeIsExact(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	colognes, ok := s.FindByType(ctx, "eau de cologne")
	require.True(t, ok)
	assert.Len(t, colognes, 2, "the trailing-space type must not match")

	_, ok = s.FindByType(ctx, "Eau de")
	assert.False(t, ok)

	_, ok = s.FindByType(ctx, "Nonexistent Type")
	assert.False(t, ok)
}

func TestMemStore_FindByNameReturnsDuplicates(t *testing.T) {
	got, ok := NewStore().FindByName(context.Background(), "BELLAVITA, ceo man")
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "100ml", got[0].Quantity)
	assert.Equal(t, "50ml", got[1].Quantity)
}

func TestMemStore_CreateAppends(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	p := Perfume{Name: "EM5, Pause", Type: "Eau de Toilette", Quantity: "10ml", Price: 99}

	assert.Equal(t, p, s.Create(ctx, p))
	assert.Equal(t, 16, s.Len())

	got, ok := s.FindByName(ctx, p.Name)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, p, got[len(got)-1])

	all, _ := s.List(ctx)
	assert.Equal(t, p, all[len(all)-1])
}

func TestMemStore_UpdateFirstMatchOnly(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	next := Perfume{Name: "Bellavita, CEO Woman", Type: "Eau de Toilette", Quantity: "20ml", Price: 300}

	got, ok := s.Update(ctx, "bellavita, ceo man", next)
	require.True(t, ok)
	assert.Equal(t, next, got)

	updated, ok := s.FindByName(ctx, next.Name)
	require.True(t, ok)
	assert.Equal(t, []Perfume{next}, updated)

	rest, ok := s.FindByName(ctx, "Bellavita, CEO Man")
	require.True(t, ok)
	assert.Equal(t, []Perfume{{Name: "Bellavita, CEO Man", Type: "Eau de Cologne ", Quantity: "50ml", Price: 699}}, rest)

	all, _ := s.List(ctx)
	assert.Equal(t, next, all[0], "update keeps the record's position")
	assert.Equal(t, 15, s.Len())
}

func TestMemStore_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, ok := s.Update(ctx, "nope", Perfume{Name: "x"})
	assert.False(t, ok)

	all, _ := s.List(ctx)
	assert.Equal(t, SeedPerfumes(), all)
}

func TestMemStore_DeleteRemovesAllMatches(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	msg, ok := s.Delete(ctx, "Bellavita, CEO Man")
	require.True(t, ok)
	assert.Equal(t, "Bellavita, CEO Man has been removed from the list...", msg)

	_, ok = s.FindByName(ctx, "Bellavita, CEO Man")
	assert.False(t, ok)
	assert.Equal(t, 13, s.Len())
}

func TestMemStore_DeleteMissingLeavesCatalog(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	msg, ok := s.Delete(ctx, "Unknown")
	assert.False(t, ok)
	assert.Empty(t, msg)
	assert.Equal(t, 15, s.Len())
}

func TestMemStore_DeleteScenario(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	all, ok := s.List(ctx)
	require.True(t, ok)
	require.Len(t, all, 15)

	_, ok = s.Delete(ctx, "EM5, Pause")
	require.True(t, ok)

	all, ok = s.List(ctx)
	require.True(t, ok)
	assert.Len(t, all, 14)
}

func TestMemStore_DeleteEverythingEmptiesList(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(Perfume{Name: "a"}, Perfume{Name: "A"})

	_, ok := s.Delete(ctx, "a")
	require.True(t, ok)

	_, ok = s.List(ctx)
	assert.False(t, ok)
}

func TestMemStore_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Create(ctx, Perfume{Name: "dup"})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.FindByName(ctx, "dup")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
