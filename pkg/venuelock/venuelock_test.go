package venuelock

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_Do_SerializesSameVenue(t *testing.T) {
	locker := New()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_ = locker.Do(context.Background(), 1, func(ctx context.Context) error {
				// Без мьютекса этот инкремент был бы гонкой
				counter++
				return nil
			})
		}()
	}

	wg.Wait()
	assert.Equal(t, goroutines, counter)
}

func TestLocker_Do_CancelledContext(t *testing.T) {
	locker := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := locker.Do(ctx, 1, func(ctx context.Context) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}

func TestLocker_DoPair_NoDeadlockOnOppositeOrder(t *testing.T) {
	locker := New()

	var wg sync.WaitGroup
	wg.Add(2)

	// Встречные переносы между площадками 1 и 2: при захвате без
	// упорядочивания по id это классический deadlock
	for i := 0; i < 2; i++ {
		a, b := int64(1), int64(2)
		if i == 1 {
			a, b = b, a
		}
		go func(a, b int64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = locker.DoPair(context.Background(), a, b, func(ctx context.Context) error {
					return nil
				})
			}
		}(a, b)
	}

	wg.Wait()
}

func TestLocker_DoPair_SameVenue(t *testing.T) {
	locker := New()

	err := locker.DoPair(context.Background(), 7, 7, func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)
}
