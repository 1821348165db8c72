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

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		code     int
		typ      int
		text     string
		wantFail bool
	}{
		{name: "ok", line: "250 ok", code: 250, typ: 2, text: "ok"},
		{name: "no match", line: "552 no match", code: 552, typ: 5, text: "no match"},
		{name: "banner", line: "220 dict.org dictd <auth> <1@dict.org>", code: 220, typ: 2, text: "dict.org dictd <auth> <1@dict.org>"},
		{name: "code only", line: "250", code: 250, typ: 2, text: ""},
		{name: "preliminary", line: "110 3 databases present", code: 110, typ: 1, text: "3 databases present"},
		{name: "text keeps inner spaces", line: "151 word  db", code: 151, typ: 1, text: "word  db"},
		{name: "empty", line: "", wantFail: true},
		{name: "too short", line: "25", wantFail: true},
		{name: "not digits", line: "abc def", wantFail: true},
		{name: "digit then letter", line: "2x0 ok", wantFail: true},
		{name: "four digits", line: "2500 ok", wantFail: true},
		{name: "below range", line: "099 nope", wantFail: true},
		{name: "above range", line: "600 nope", wantFail: true},
		{name: "body line", line: "foldoc \"Free On-line Dictionary\"", wantFail: true},
		{name: "terminator", line: ".", wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseStatus(tt.line)
			if tt.wantFail {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrMalformedStatus)
				assert.True(t, ShouldCloseConnection(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, status.Code)
			assert.Equal(t, tt.typ, status.Type())
			assert.Equal(t, tt.text, status.Text)
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, Status{Code: 250}.IsOK())
	assert.False(t, Status{Code: 220}.IsOK())
	assert.True(t, Status{Code: 420}.IsError())
	assert.True(t, Status{Code: 552}.IsError())
	assert.False(t, Status{Code: 152}.IsError())
	assert.Equal(t, "250 ok", Status{Code: 250, Text: "ok"}.String())
	assert.Equal(t, "552", Status{Code: 552}.String())
}

func TestReadStatus(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("250 ok\r\n552 no match\r\n"))

	status, err := ReadStatus(r)
	require.NoError(t, err)
	assert.Equal(t, 250, status.Code)

	status, err = ReadStatus(r)
	require.NoError(t, err)
	assert.Equal(t, 552, status.Code)
	assert.Equal(t, 5, status.Type())

	_, err = ReadStatus(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))

	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "read", perr.Op)
}
