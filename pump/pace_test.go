package pump

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaceSpacing(t *testing.T) {
	const period = 20 * time.Millisecond

	src, err := Pace(FromSlice([]int{1, 2, 3, 4, 5}), period)
	require.NoError(t, err)

	ctx := context.Background()
	var emissions []time.Time
	for {
		_, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		emissions = append(emissions, time.Now())
	}

	require.Len(t, emissions, 5)
	for i := 1; i < len(emissions); i++ {
		gap := emissions[i].Sub(emissions[i-1])
		// Allow a millisecond of measurement slop; the timer itself
		// never fires early.
		assert.GreaterOrEqual(t, gap, period-time.Millisecond,
			"emissions %d and %d too close together", i-1, i)
	}
}

func TestPaceSlowSourceNotDelayedFurther(t *testing.T) {
	const period = 5 * time.Millisecond
	const sourceDelay = 25 * time.Millisecond

	slow := SourceFunc[int](func(ctx context.Context) (int, error) {
		time.Sleep(sourceDelay)
		return 1, nil
	})
	src, err := Pace(slow, period)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = src.Next(ctx)
	require.NoError(t, err)

	// The source already takes longer than the period, so the pacer
	// must not add any wait of its own.
	start := time.Now()
	_, err = src.Next(ctx)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), sourceDelay+period)
}

func TestPaceRejectsNonPositivePeriod(t *testing.T) {
	for _, period := range []time.Duration{0, -time.Second} {
		src, err := Pace(FromSlice([]int{1}), period)
		assert.Nil(t, src)
		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	}
}

func TestPaceCancelledWhileWaiting(t *testing.T) {
	src, err := Pace(FromSlice([]int{1, 2}), time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	_, err = src.Next(ctx)
	require.NoError(t, err)

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err = src.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
