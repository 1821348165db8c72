package protocol

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldCloseConnection(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		close bool
	}{
		{"nil", nil, false},
		{"permanent status", NewStatusError("match", Status{Code: 550, Text: "invalid database"}), false},
		{"transient status", NewStatusError("define", Status{Code: 420, Text: "server temporarily unavailable"}), false},
		{"unexpected success", NewStatusError("show info", Status{Code: 250, Text: "ok"}), false},
		{"preliminary status", NewStatusError("match", Status{Code: 150, Text: "1 definitions retrieved"}), true},
		{"preliminary status in definitions", NewStatusError("define", Status{Code: 112, Text: "information"}), true},
		{"wrapped preliminary status", fmt.Errorf("lookup: %w", NewStatusError("match", Status{Code: 110})), true},
		{"invalid argument", &ProtocolError{Op: "write", Err: ErrInvalidArgument}, false},
		{"io error", &ProtocolError{Op: "read", Err: io.ErrUnexpectedEOF}, true},
		{"unknown error", errors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.close, ShouldCloseConnection(tt.err))
		})
	}
}
