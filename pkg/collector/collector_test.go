package collector

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	c := New()

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Failures())
	assert.Empty(t, c.Errors())
	assert.NoError(t, c.Err())
	assert.False(t, c.Stats().StartTime.IsZero())
}

func TestCollector_Record_AssignsSequence(t *testing.T) {
	c := New()

	first := c.Record(Failure{Kind: "int", Check: "IsPositive"})
	second := c.Record(Failure{Kind: "string", Check: "Contains"})

	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)
	assert.False(t, first.Time.IsZero())

	failures := c.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, "IsPositive", failures[0].Check)
	assert.Equal(t, "Contains", failures[1].Check)
}

func TestCollector_Failures_ReturnsCopy(t *testing.T) {
	c := New()
	c.Record(Failure{Kind: "bool", Check: "IsTrue"})

	failures := c.Failures()
	failures[0].Check = "mutated"

	assert.Equal(t, "IsTrue", c.Failures()[0].Check)
}

func TestCollector_OnFailure(t *testing.T) {
	c := New()

	var got []Failure
	c.OnFailure(func(f Failure) {
		got = append(got, f)
	})

	c.Record(Failure{Kind: "error", Check: "HasBeenThrown"})

	require.Len(t, got, 1)
	assert.Equal(t, "HasBeenThrown", got[0].Check)
	assert.Equal(t, 1, got[0].Seq)
}

func TestCollector_Observe(t *testing.T) {
	c := New()

	c.Observe(true)
	c.Observe(true)
	c.Observe(false)

	s := c.Stats()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 1, s.Failed)
}

func TestCollector_Err_CombinesAll(t *testing.T) {
	c := New()
	c.Record(Failure{Kind: "int", Check: "IsZero", Summary: "first"})
	c.Record(Failure{Kind: "int", Check: "IsZero", Summary: "second"})

	err := c.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")

	var f Failure
	assert.True(t, errors.As(err, &f))
}

func TestCollector_Reset(t *testing.T) {
	c := New()
	calls := 0
	c.OnFailure(func(Failure) { calls++ })
	c.Record(Failure{Kind: "int"})
	c.Observe(false)

	c.Reset()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Stats().Total)

	f := c.Record(Failure{Kind: "int"})
	assert.Equal(t, 1, f.Seq)
	assert.Equal(t, 2, calls)
}

func TestCollector_ConcurrentRecord(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Observe(false)
			c.Record(Failure{Kind: "int", Check: "IsZero"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
	assert.Equal(t, 50, c.Stats().Failed)

	seen := make(map[int]bool)
	for _, f := range c.Failures() {
		seen[f.Seq] = true
	}
	assert.Len(t, seen, 50)
}
