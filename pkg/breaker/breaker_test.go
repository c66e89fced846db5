package breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bookbuddy/library-client/pkg/breaker"
)

func TestBreaker_Call(t *testing.T) {
	t.Parallel()

	ok := func() error { return nil }
	boom := func() error { return errors.New("service error") }

	t.Run("stays closed on success", func(t *testing.T) {
		t.Parallel()
		b := breaker.New(10, time.Second, 0.5, 2)
		for i := 0; i < 50; i++ {
			require.NoError(t, b.Call(ok))
		}
	})

	t.Run("opens after failure rate exceeded", func(t *testing.T) {
		t.Parallel()
		b := breaker.New(10, time.Minute, 0.5, 2)
		for i := 0; i < 5; i++ {
			require.Error(t, b.Call(boom))
		}
		err := b.Call(ok)
		require.ErrorIs(t, err, breaker.ErrOpen)
	})

	t.Run("half open recovers after cooldown", func(t *testing.T) {
		t.Parallel()
		b := breaker.New(4, 10*time.Millisecond, 0.5, 1)
		for i := 0; i < 2; i++ {
			require.Error(t, b.Call(boom))
		}
		require.ErrorIs(t, b.Call(ok), breaker.ErrOpen)

		time.Sleep(20 * time.Millisecond)
		// probe calls pass through again
		require.NoError(t, b.Call(ok))
		require.NoError(t, b.Call(ok))
		require.NoError(t, b.Call(ok))
	})

	t.Run("half open reopens on failure", func(t *testing.T) {
		t.Parallel()
		b := breaker.New(4, 10*time.Millisecond, 0.5, 1)
		for i := 0; i < 2; i++ {
			require.Error(t, b.Call(boom))
		}
		time.Sleep(20 * time.Millisecond)
		require.Error(t, b.Call(boom))
		require.ErrorIs(t, b.Call(ok), breaker.ErrOpen)
	})

	t.Run("reset closes the breaker", func(t *testing.T) {
		t.Parallel()
		b := breaker.New(4, time.Minute, 0.5, 1)
		for i := 0; i < 2; i++ {
			require.Error(t, b.Call(boom))
		}
		require.ErrorIs(t, b.Call(ok), breaker.ErrOpen)
		b.Reset()
		require.NoError(t, b.Call(ok))
	})
}
