package queue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWhenFull(t *testing.T) {
	q := New[int](2, ErrorWhenFull)

	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))

	err := q.Push(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFull))
	assert.True(t, q.Full())
	assert.Equal(t, 2, q.Len())
}

func TestOverwriteWhenFull(t *testing.T) {
	q := New[int](2, OverwriteWhenFull)

	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	require.NoError(t, q.Push(3), "overwrite policy never reports full")

	v, err := q.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, v, "the oldest entry survives an overwrite")

	v, err = q.Read()
	require.NoError(t, err)
	assert.Equal(t, 3, v, "the newest entry was replaced")
}

func TestBlockWhenFull(t *testing.T) {
	q := New[int](2, BlockWhenFull)
	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))

	done := make(chan struct{})
	go func() {
		_ = q.Push(3)
		close(done)
	}()

	v, err := q.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	<-done
}

func TestReadEmpty(t *testing.T) {
	q := New[string](4, ErrorWhenFull)

	_, err := q.Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmpty))

	require.NoError(t, q.Push("x"))
	v, err := q.Read()
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = q.Read()
	assert.True(t, errors.Is(err, ErrEmpty), "drained queue reads empty again")
}

func TestQueueFIFO(t *testing.T) {
	q := New[int](8, ErrorWhenFull)
	for i := 1; i <= 8; i++ {
		require.NoError(t, q.Push(i))
	}
	for i := 1; i <= 8; i++ {
		v, err := q.Read()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestQueueErrorStrings(t *testing.T) {
	assert.Equal(t, "queue: full", ErrFull.Error())
	assert.Equal(t, "queue: empty", ErrEmpty.Error())
	assert.Equal(t, "queue: unknown error", ErrUnknown.Error())
}

func TestPolicyStrings(t *testing.T) {
	assert.Equal(t, "error-when-full", ErrorWhenFull.String())
	assert.Equal(t, "overwrite-when-full", OverwriteWhenFull.String())
	assert.Equal(t, "block-when-full", BlockWhenFull.String())
}

func TestAccessorsDelegate(t *testing.T) {
	q := New[int](3, ErrorWhenFull)
	assert.Equal(t, 3, q.Cap())
	assert.True(t, q.Empty())
	assert.Equal(t, ErrorWhenFull, q.Policy())

	require.NoError(t, q.Push(1))
	assert.Equal(t, 1, q.Len())
	assert.False(t, q.Empty())
	assert.False(t, q.Full())
}
