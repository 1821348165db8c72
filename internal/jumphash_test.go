package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJumpHash(t *testing.T) {
	t.Run("no buckets", func(t *testing.T) {
		require.Equal(t, 0, JumpHash(42, 0))
		require.Equal(t, 0, JumpHash(42, -1))
	})

	t.Run("single bucket", func(t *testing.T) {
		for key := uint64(0); key < 100; key++ {
			require.Equal(t, 0, JumpHash(key, 1))
		}
	})

	t.Run("bounds", func(t *testing.T) {
		for key := uint64(0); key < 1000; key++ {
			bucket := JumpHash(key*7919, 7)
			require.True(t, bucket >= 0 && bucket < 7, "key=%d bucket=%d", key, bucket)
		}
	})

	t.Run("growing moves keys only to the new bucket", func(t *testing.T) {
		for key := uint64(0); key < 1000; key++ {
			before := JumpHash(key*104729, 5)
			after := JumpHash(key*104729, 6)
			if before != after {
				require.Equal(t, 5, after, "key=%d moved from %d to %d", key, before, after)
			}
		}
	})
}
