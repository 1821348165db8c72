package dict

import (
	"github.com/pior/dict/internal"
	"github.com/zeebo/xxh3"
)

// ServerSelector picks which server to use for a given key (usually the
// word being looked up). It returns an index in [0, serverCount).
type ServerSelector func(key string, serverCount int) int

// DefaultServerSelector hashes the key with xxh3 and places it with jump
// consistent hashing, so adding a mirror moves few words to a new server.
func DefaultServerSelector(key string, serverCount int) int {
	return internal.JumpHash(xxh3.HashString(key), serverCount)
}

// staticSelector is used in tests to always select a specific server.
func staticSelector(index int) ServerSelector {
	return func(key string, serverCount int) int {
		return index % serverCount
	}
}
