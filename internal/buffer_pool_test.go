package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool(t *testing.T) {
	p := NewBufferPool(16, 64)

	buf := p.Get()
	assert.Equal(t, 0, buf.Len())
	assert.GreaterOrEqual(t, buf.Cap(), 16)

	buf.WriteString("DEFINE * cat")
	p.Put(buf)

	// Whatever comes back is empty
	assert.Equal(t, 0, p.Get().Len())
}

func TestBufferPool_DropsLargeBuffers(t *testing.T) {
	p := NewBufferPool(16, 64)

	large := bytes.NewBuffer(make([]byte, 0, 128))
	large.WriteString("x")
	p.Put(large)

	assert.Equal(t, 1, large.Len(), "oversized buffer is not reset or reused")
}
