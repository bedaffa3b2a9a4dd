package banner

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockDeliversTicks(t *testing.T) {
	c := NewClock(100)
	ticks := make(chan struct{}, 16)
	c.Start(func() { ticks <- struct{}{} })
	defer c.Stop()

	for i := 0; i < 3; i++ {
		select {
		case <-ticks:
		case <-time.After(time.Second):
			t.Fatalf("tick %d never fired", i)
		}
	}
}

func TestClockStopReleasesTicker(t *testing.T) {
	c := NewClock(200)
	var count atomic.Int64
	c.Start(func() { count.Add(1) })

	require.Eventually(t, func() bool { return count.Load() >= 2 }, time.Second, time.Millisecond)

	c.Stop()
	settled := count.Load()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, count.Load(), settled+1, "ticks after Stop")
	assert.False(t, c.Running())
}

func TestClockStopIsIdempotent(t *testing.T) {
	c := NewClock(60)
	c.Stop() // never started
	c.Start(func() {})
	c.Stop()
	c.Stop()
	assert.False(t, c.Running())
}

func TestClockRefusesDegenerateRate(t *testing.T) {
	for _, fps := range []int{0, -5} {
		c := NewClock(fps)
		c.Start(func() { t.Errorf("fps %d ticked", fps) })
		assert.False(t, c.Running())
		time.Sleep(20 * time.Millisecond)
	}
}

func TestClockStartWhileRunningIsNoOp(t *testing.T) {
	c := NewClock(100)
	var first atomic.Int64
	c.Start(func() { first.Add(1) })
	defer c.Stop()

	c.Start(func() { t.Error("second callback must not be installed") })
	require.Eventually(t, func() bool { return first.Load() >= 1 }, time.Second, time.Millisecond)
	assert.True(t, c.Running())
}

func TestClockIntervalIntegerDivision(t *testing.T) {
	assert.Equal(t, 33*time.Millisecond, NewClock(30).interval)
	assert.Equal(t, 1000*time.Millisecond, NewClock(1).interval)
	// Rates above 1000 collapse to the millisecond floor.
	assert.Equal(t, time.Millisecond, NewClock(5000).interval)
}
