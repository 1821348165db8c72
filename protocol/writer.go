package protocol

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/pior/dict/internal"
)

// ErrInvalidArgument is returned when a command argument cannot be sent
// on the wire. Nothing is written in that case.
var ErrInvalidArgument = errors.New("invalid command argument")

var bufferPool = internal.NewBufferPool(128, MaxLineLength*4)

// ValidateCommand checks that the command line fits on one line and within
// MaxLineLength.
func ValidateCommand(cmd CmdType, args ...string) error {
	size := len(cmd) + len(CRLF)
	for _, arg := range args {
		if arg == "" {
			return &ProtocolError{Op: "write", Message: "empty argument", Err: ErrInvalidArgument}
		}
		if strings.ContainsAny(arg, "\r\n") {
			return &ProtocolError{Op: "write", Message: "argument contains a line break", Err: ErrInvalidArgument}
		}
		size += len(Space) + len(arg)
	}
	if size > MaxLineLength {
		return &ProtocolError{Op: "write", Message: "command line too long", Err: ErrInvalidArgument}
	}
	return nil
}

// WriteCommand serializes a command line and writes it to w.
// Format: <command> [<arg> ...]\r\n
//
// Arguments are written as given; callers quote them with Quote when they
// may contain whitespace. A bufio.Writer is flushed before returning.
//
// I/O failures are returned as a ProtocolError with Op "write".
func WriteCommand(w io.Writer, cmd CmdType, args ...string) error {
	if err := ValidateCommand(cmd, args...); err != nil {
		return err
	}

	// Optimize for bufio.Writer (used by Connection)
	if bw, ok := w.(*bufio.Writer); ok {
		return writeCommandBuffered(bw, cmd, args)
	}

	return writeCommandUnbuffered(w, cmd, args)
}

// writeCommandBuffered writes through the bufio.Writer and flushes it.
func writeCommandBuffered(bw *bufio.Writer, cmd CmdType, args []string) error {
	bw.WriteString(string(cmd))
	for _, arg := range args {
		bw.WriteString(Space)
		bw.WriteString(arg)
	}
	bw.WriteString(CRLF)

	if err := bw.Flush(); err != nil {
		return &ProtocolError{Op: "write", Err: err}
	}
	return nil
}

// writeCommandUnbuffered builds the line in a pooled buffer and writes it
// with a single call.
func writeCommandUnbuffered(w io.Writer, cmd CmdType, args []string) error {
	buf := bufferPool.Get()
	defer bufferPool.Put(buf)

	buf.WriteString(string(cmd))
	for _, arg := range args {
		buf.WriteString(Space)
		buf.WriteString(arg)
	}
	buf.WriteString(CRLF)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return &ProtocolError{Op: "write", Err: err}
	}
	return nil
}
