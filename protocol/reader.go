package protocol

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ReadLine reads one line from r and returns it without its CRLF (a bare LF
// is accepted too).
//
// A stream that ends before the line terminator is a protocol error wrapping
// io.ErrUnexpectedEOF (or io.EOF when nothing at all was read).
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		// Line exceeds buffer, copy what we have before ReadBytes reuses it
		head := append([]byte(nil), line...)
		var rest []byte
		rest, err = r.ReadBytes('\n')
		line = append(head, rest...)
	}
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			err = io.ErrUnexpectedEOF
		}
		return "", &ProtocolError{Op: "read", Err: err}
	}

	n := len(line) - 1
	if n > 0 && line[n-1] == '\r' {
		n--
	}
	return string(line[:n]), nil
}

// ReadTextBlock reads the lines of a text block up to the "." terminator
// and passes each one to fn. The terminator is not passed on. Lines are
// dot-unstuffed: a leading ".." is delivered as ".".
//
// Returning an error from fn stops the read; the rest of the block is left
// in r.
func ReadTextBlock(r *bufio.Reader, fn func(line string) error) error {
	for {
		line, err := ReadLine(r)
		if err != nil {
			return err
		}

		if line == Terminator {
			return nil
		}

		if strings.HasPrefix(line, "..") {
			line = line[1:]
		}

		if err := fn(line); err != nil {
			return err
		}
	}
}

// ReadText reads a whole text block and returns its lines.
func ReadText(r *bufio.Reader) ([]string, error) {
	var lines []string
	err := ReadTextBlock(r, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ExpectOK reads a status line and requires it to be 250.
func ExpectOK(r *bufio.Reader, op string) error {
	status, err := ReadStatus(r)
	if err != nil {
		return err
	}
	if !status.IsOK() {
		return NewStatusError(op, status)
	}
	return nil
}
