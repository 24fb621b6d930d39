package workerpool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_ReceiveBlocksUntilSend(t *testing.T) {
	t.Parallel()

	q := newQueue(1)
	got := make(chan Job, 1)
	go func() {
		job, ok := q.receive()
		if ok {
			got <- job
		}
		close(got)
	}()

	select {
	case <-got:
		t.Fatal("receive returned on an empty queue")
	case <-time.After(20 * time.Millisecond):
	}

	var ran bool
	require.NoError(t, q.send(JobFunc(func() { ran = true })))

	job, ok := <-got
	require.True(t, ok)
	job.Run()
	assert.True(t, ran)
}

func TestQueue_CloseDrainsPendingJobs(t *testing.T) {
	t.Parallel()

	q := newQueue(1)
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		require.NoError(t, q.send(JobFunc(func() { order = append(order, i) })))
	}
	q.close()
	q.close()

	assert.ErrorIs(t, q.send(JobFunc(func() {})), ErrPoolClosed)
	assert.Equal(t, 3, q.depth())

	for {
		job, ok := q.receive()
		if !ok {
			break
		}
		job.Run()
	}
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Equal(t, 0, q.depth())
}

func TestQueue_SendWithoutReceivers(t *testing.T) {
	t.Parallel()

	q := newQueue(2)
	q.detach()
	require.NoError(t, q.send(JobFunc(func() {})))

	q.detach()
	assert.ErrorIs(t, q.send(JobFunc(func() {})), ErrNoReceivers)
}
