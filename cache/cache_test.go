package cache

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/fpmatch/matcher"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheHit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.cache")
	defer teardown()
	//
	c, err := New(10, matcher.Compile)
	require.NoError(t, err)
	p1, err := c.GetOrCompile("[head, *tail]")
	require.NoError(t, err)
	p2, err := c.GetOrCompile("[head, *tail]")
	require.NoError(t, err)
	assert.Same(t, p1, p2)
	assert.Equal(t, 1, c.Len())
}

func TestCacheDoesNotStoreErrors(t *testing.T) {
	c, err := New(10, matcher.Compile)
	require.NoError(t, err)
	_, err = c.GetOrCompile("[*, 2]")
	assert.Error(t, err)
	assert.False(t, c.Contains("[*, 2]"))
	assert.Equal(t, 0, c.Len())
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.cache")
	defer teardown()
	//
	const capacity = 3
	c, err := New(capacity, matcher.Compile)
	require.NoError(t, err)
	first, err := c.GetOrCompile("[0]")
	require.NoError(t, err)
	for i := 1; i <= capacity; i++ {
		_, err := c.GetOrCompile("[" + strconv.Itoa(i) + "]")
		require.NoError(t, err)
	}
	assert.Equal(t, capacity, c.Len())
	assert.False(t, c.Contains("[0]"), "expected least recently used entry to be evicted")
	// the evicted handle stays usable
	ok, err := first.Matches([]int{0}, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	// recompiling yields a fresh but structurally equal tree
	again, err := c.GetOrCompile("[0]")
	require.NoError(t, err)
	assert.NotSame(t, first, again)
	assert.Equal(t, first, again)
}

func TestCacheRecencyIsUpdatedOnHit(t *testing.T) {
	c, err := New(2, matcher.Compile)
	require.NoError(t, err)
	_, _ = c.GetOrCompile("a")
	_, _ = c.GetOrCompile("b")
	_, _ = c.GetOrCompile("a") // a is now most recently used
	_, _ = c.GetOrCompile("c")
	assert.True(t, c.Contains("a"))
	assert.False(t, c.Contains("b"))
}

func TestCacheConcurrentGetOrCompile(t *testing.T) {
	var builds int32
	c, err := New(100, func(text string) (*matcher.Compiled, error) {
		atomic.AddInt32(&builds, 1)
		return matcher.Compile(text)
	})
	require.NoError(t, err)
	const workers = 64
	results := make([]*matcher.Compiled, workers)
	errs := make([]error, workers)
	var start, done sync.WaitGroup
	start.Add(1)
	for i := 0; i < workers; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			results[i], errs[i] = c.GetOrCompile("[x, Point(a, b), *rest]")
		}(i)
	}
	start.Done()
	done.Wait()
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
	assert.Equal(t, 1, c.Len())
	t.Logf("%d build(s) for %d concurrent callers", atomic.LoadInt32(&builds), workers)
}

func TestCacheDefaultCapacity(t *testing.T) {
	c, err := New(0, matcher.Compile)
	require.NoError(t, err)
	assert.NotNil(t, c)
	_, err = New[int](10, nil)
	assert.Error(t, err)
}
