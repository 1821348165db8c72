package dict

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultServerSelector(t *testing.T) {
	t.Run("consistency", func(t *testing.T) {
		first := DefaultServerSelector("serendipity", 10)
		for range 4 {
			require.Equal(t, first, DefaultServerSelector("serendipity", 10))
		}
	})

	t.Run("bounds", func(t *testing.T) {
		words := []string{"cat", "dog", "hot dog", "", "antidisestablishmentarianism"}
		serverCounts := []int{1, 2, 5, 10, 100}

		for _, word := range words {
			for _, count := range serverCounts {
				result := DefaultServerSelector(word, count)
				require.True(t, result >= 0 && result < count, "out of bounds: word=%q, serverCount=%d, result=%d", word, count, result)
			}
		}
	})

	t.Run("distribution", func(t *testing.T) {
		serverCount := 10
		distribution := make(map[int]int)

		for i := range 100 {
			server := DefaultServerSelector(fmt.Sprintf("word-%d", i), serverCount)
			distribution[server]++
		}

		require.True(t, len(distribution) >= 5, "poor distribution: only %d servers used out of %d", len(distribution), serverCount)
		for server, count := range distribution {
			require.True(t, count <= 30, "unbalanced distribution: server %d has %d%% of words", server, count)
		}
	})

	t.Run("stability when adding a server", func(t *testing.T) {
		moved := 0
		for i := range 1000 {
			word := fmt.Sprintf("word-%d", i)
			if DefaultServerSelector(word, 4) != DefaultServerSelector(word, 5) {
				moved++
			}
		}
		// Jump hashing moves about 1/5 of the words
		require.Less(t, moved, 300)
	})
}

func BenchmarkDefaultServerSelector(b *testing.B) {
	for b.Loop() {
		DefaultServerSelector("serendipity", 10)
	}
}
