package protocol

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("first\r\nsecond\n\r\nlast"))

	line, err := ReadLine(r)
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = ReadLine(r)
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	line, err = ReadLine(r)
	require.NoError(t, err)
	assert.Equal(t, "", line)

	_, err = ReadLine(r)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadLineLongerThanBuffer(t *testing.T) {
	long := strings.Repeat("x", 100)
	r := bufio.NewReaderSize(strings.NewReader(long+"\r\nnext\r\n"), 16)

	line, err := ReadLine(r)
	require.NoError(t, err)
	assert.Equal(t, long, line)

	line, err = ReadLine(r)
	require.NoError(t, err)
	assert.Equal(t, "next", line)
}

func TestReadText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines []string
	}{
		{
			name:  "two lines",
			input: "foldoc \"Free On-line Dictionary of Computing\"\r\nwn \"WordNet\"\r\n.\r\n",
			lines: []string{`foldoc "Free On-line Dictionary of Computing"`, `wn "WordNet"`},
		},
		{
			name:  "empty block",
			input: ".\r\n",
			lines: nil,
		},
		{
			name:  "blank lines are data",
			input: "a\r\n\r\n  b\r\n.\r\n",
			lines: []string{"a", "", "  b"},
		},
		{
			name:  "dot stuffing",
			input: "..\r\n...\r\n..hidden\r\n.\r\n",
			lines: []string{".", "..", ".hidden"},
		},
		{
			name:  "dot with trailing text is data",
			input: ".x\r\n.\r\n",
			lines: []string{".x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufio.NewReader(strings.NewReader(tt.input))
			lines, err := ReadText(r)
			require.NoError(t, err)
			assert.Equal(t, tt.lines, lines)

			_, err = r.ReadByte()
			assert.ErrorIs(t, err, io.EOF, "terminator should be consumed")
		})
	}
}

func TestReadTextPrematureEnd(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("line one\r\nline two\r\n"))
	_, err := ReadText(r)
	require.Error(t, err)
	assert.True(t, ShouldCloseConnection(err))
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadTextBlockStopsOnCallbackError(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("a\r\nb\r\n.\r\n"))
	stop := errors.New("stop")

	var seen []string
	err := ReadTextBlock(r, func(line string) error {
		seen = append(seen, line)
		return stop
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"a"}, seen)

	line, err := ReadLine(r)
	require.NoError(t, err)
	assert.Equal(t, "b", line)
}

func TestExpectOK(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("250 ok\r\n550 invalid database\r\n"))
	require.NoError(t, ExpectOK(r, "test"))

	err := ExpectOK(r, "test")
	require.Error(t, err)
	status, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidDatabase, status.Code)
	assert.False(t, ShouldCloseConnection(err))
}
