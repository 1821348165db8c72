package protocol

import (
	"bufio"
	"strings"
)

// Status is a parsed status line: a three digit code and free text.
type Status struct {
	Code int
	Text string
}

// Type returns the leading digit of the code, used as a coarse category:
// 1 preliminary, 2 success, 3 in progress, 4 transient error, 5 permanent error.
func (s Status) Type() int {
	return s.Code / 100
}

// IsOK returns true for the 250 completion status.
func (s Status) IsOK() bool {
	return s.Code == CodeOK
}

// IsError returns true for 4xx and 5xx statuses.
func (s Status) IsError() bool {
	return s.Type() >= TypeTransientError
}

func (s Status) String() string {
	if s.Text == "" {
		return itoa3(s.Code)
	}
	return itoa3(s.Code) + " " + s.Text
}

// ParseStatus decodes a status line of the form "DDD text".
// The code must be three decimal digits in 100-599, followed by the end of
// the line or a space.
func ParseStatus(line string) (Status, error) {
	if len(line) < 3 {
		return Status{}, &ProtocolError{Op: "status", Message: "line too short: " + quoteLine(line), Err: ErrMalformedStatus}
	}

	code := 0
	for i := 0; i < 3; i++ {
		c := line[i]
		if c < '0' || c > '9' {
			return Status{}, &ProtocolError{Op: "status", Message: "invalid code: " + quoteLine(line), Err: ErrMalformedStatus}
		}
		code = code*10 + int(c-'0')
	}

	if code < MinCode || code > MaxCode {
		return Status{}, &ProtocolError{Op: "status", Message: "code out of range: " + quoteLine(line), Err: ErrMalformedStatus}
	}

	rest := line[3:]
	if rest != "" && rest[0] != ' ' {
		return Status{}, &ProtocolError{Op: "status", Message: "invalid code: " + quoteLine(line), Err: ErrMalformedStatus}
	}

	return Status{Code: code, Text: strings.TrimPrefix(rest, " ")}, nil
}

// ReadStatus reads exactly one line from r and parses it as a status.
func ReadStatus(r *bufio.Reader) (Status, error) {
	line, err := ReadLine(r)
	if err != nil {
		return Status{}, err
	}
	return ParseStatus(line)
}

func itoa3(code int) string {
	return string([]byte{byte('0' + code/100%10), byte('0' + code/10%10), byte('0' + code%10)})
}

func quoteLine(line string) string {
	const limit = 64
	if len(line) > limit {
		line = line[:limit] + "..."
	}
	return `"` + line + `"`
}
