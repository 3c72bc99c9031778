package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/hydro-report-etl/internal/domain"
)

type countingSource struct {
	calls int
	inner Source
}

func (s *countingSource) Resolve(county domain.County) (*Template, error) {
	s.calls++
	return s.inner.Resolve(county)
}

func TestCachedSource_ResolvesOncePerCounty(t *testing.T) {
	src := &countingSource{inner: NewResolver("")}
	cached := NewCachedSource(src, 4)

	first, err := cached.Resolve(domain.SanBernardino)
	require.NoError(t, err)
	second, err := cached.Resolve(domain.SanBernardino)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, src.calls)

	_, err = cached.Resolve(domain.Riverside)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestCachedSource_ErrorsAreNotCached(t *testing.T) {
	src := &countingSource{inner: NewResolver(t.TempDir())}
	cached := NewCachedSource(src, 4)

	_, err := cached.Resolve(domain.SanBernardino)
	require.Error(t, err)
	_, err = cached.Resolve(domain.SanBernardino)
	require.Error(t, err)

	assert.Equal(t, 2, src.calls)
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newLRUCache(2)
	a, b, d := &Template{}, &Template{}, &Template{}

	c.put(domain.SanBernardino, a)
	c.put(domain.Riverside, b)

	// Touch San Bernardino so Riverside becomes the eviction candidate.
	_, ok := c.get(domain.SanBernardino)
	require.True(t, ok)

	c.put(domain.CountyUnknown, d)

	_, ok = c.get(domain.Riverside)
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.get(domain.SanBernardino)
	assert.True(t, ok)
	_, ok = c.get(domain.CountyUnknown)
	assert.True(t, ok)
}

func TestLRUCache_UpdateExistingKey(t *testing.T) {
	c := newLRUCache(2)
	first, second := &Template{}, &Template{}

	c.put(domain.SanBernardino, first)
	c.put(domain.SanBernardino, second)

	got, ok := c.get(domain.SanBernardino)
	require.True(t, ok)
	assert.Same(t, second, got)
}
