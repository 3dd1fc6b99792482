package native

import (
	stderrors "errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/native/errors"
)

type greeter interface {
	Greet() string
}

type english struct{ id int }

func (e *english) Greet() string { return "hello" }

func TestGet_ReturnsSameInstance(t *testing.T) {
	r := NewRegistry()
	var calls int
	Register(r, func() (greeter, error) {
		calls++
		return &english{id: calls}, nil
	})

	first, err := Get[greeter](r)
	require.NoError(t, err)
	second, err := Get[greeter](r)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestGet_ConcurrentFirstUse(t *testing.T) {
	r := NewRegistry()
	var calls atomic.Int32
	release := make(chan struct{})
	Register(r, func() (greeter, error) {
		calls.Add(1)
		<-release
		return &english{}, nil
	})

	const n = 32
	results := make([]greeter, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g, err := Get[greeter](r)
			assert.NoError(t, err)
			results[i] = g
		}(i)
	}

	// Give the goroutines a chance to pile up on the in-flight construction.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, g := range results {
		assert.Same(t, results[0], g)
	}
}

func TestGet_FailedConstructionNotCached(t *testing.T) {
	r := NewRegistry()
	boom := stderrors.New("boom")
	var calls int
	Register(r, func() (greeter, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return &english{}, nil
	})

	_, err := Get[greeter](r)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, errors.CodeInternal, errors.GetCode(err))

	g, err := Get[greeter](r)
	require.NoError(t, err)
	assert.Equal(t, "hello", g.Greet())
	assert.Equal(t, 2, calls)
}

func TestGet_NilInstance(t *testing.T) {
	r := NewRegistry()
	Register(r, func() (greeter, error) { return nil, nil })

	_, err := Get[greeter](r)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInternal, errors.GetCode(err))
}

func TestGet_Unsupported(t *testing.T) {
	r := NewRegistry()

	_, err := Get[greeter](r)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnsupported, errors.GetCode(err))
	assert.False(t, errors.IsRetryable(err))
	assert.Contains(t, err.Error(), "native.greeter")
}

func TestRegister_KeepsBuiltInstance(t *testing.T) {
	r := NewRegistry()
	Register(r, func() (greeter, error) { return &english{id: 1}, nil })
	first := MustGet[greeter](r)

	Register(r, func() (greeter, error) { return &english{id: 2}, nil })
	assert.Same(t, first, MustGet[greeter](r))
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet[greeter](NewRegistry())
	})
}

func TestDefault_IsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}
