package protocol

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCommand(t *testing.T) {
	tests := []struct {
		name     string
		cmd      CmdType
		args     []string
		expected string
	}{
		{
			name:     "show databases",
			cmd:      CmdShowDatabases,
			expected: "SHOW DB\r\n",
		},
		{
			name:     "show strategies",
			cmd:      CmdShowStrategies,
			expected: "SHOW STRAT\r\n",
		},
		{
			name:     "match",
			cmd:      CmdMatch,
			args:     []string{"*", "prefix", Quote("cat")},
			expected: "MATCH * prefix \"cat\"\r\n",
		},
		{
			name:     "define with spaces",
			cmd:      CmdDefine,
			args:     []string{"!", Quote("hot dog")},
			expected: "DEFINE ! \"hot dog\"\r\n",
		},
		{
			name:     "quit",
			cmd:      CmdQuit,
			expected: "QUIT\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" unbuffered", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteCommand(&buf, tt.cmd, tt.args...))
			assert.Equal(t, tt.expected, buf.String())
		})

		t.Run(tt.name+" buffered", func(t *testing.T) {
			var buf bytes.Buffer
			bw := bufio.NewWriter(&buf)
			require.NoError(t, WriteCommand(bw, tt.cmd, tt.args...))
			assert.Equal(t, tt.expected, buf.String(), "bufio.Writer should be flushed")
		})
	}
}

func TestWriteCommandInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"empty argument", []string{""}},
		{"line feed", []string{"a\nb"}},
		{"carriage return", []string{"a\rb"}},
		{"too long", []string{strings.Repeat("x", MaxLineLength)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteCommand(&buf, CmdDefine, tt.args...)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.False(t, ShouldCloseConnection(err))
			assert.Zero(t, buf.Len(), "nothing should be written")
		})
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestWriteCommandIOError(t *testing.T) {
	broken := errors.New("broken pipe")

	err := WriteCommand(failingWriter{err: broken}, CmdShowDatabases)
	require.ErrorIs(t, err, broken)
	assert.True(t, ShouldCloseConnection(err))

	err = WriteCommand(bufio.NewWriter(failingWriter{err: broken}), CmdShowDatabases)
	require.ErrorIs(t, err, broken)

	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "write", perr.Op)
}
