// Package protocol provides a low-level wire protocol implementation for the
// DICT protocol (RFC 2229).
//
// This package serves as the foundation of the dict client. It covers
// serialization of command lines and parsing of replies, without managing
// connections.
//
// # Replies
//
// Every reply starts with a status line made of a three digit code and free
// text. Some statuses announce a text block: lines up to a line holding a
// single ".". A DEFINE reply nests one 151 status and text block per
// definition:
//
//	150 2 definitions retrieved
//	151 "cat" wn "WordNet (r) 3.0 (2006)"
//	cat
//	    n 1: feline mammal usually having thick soft fur
//	.
//	151 "cat" foldoc "The Free On-line Dictionary of Computing"
//	CAT
//	.
//	250 ok
//
// ReadStatus parses one status line, ReadTextBlock and ReadText consume a
// text block, SplitAtoms splits a line into (possibly quoted) atoms:
//
//	r := bufio.NewReader(conn)
//	status, err := protocol.ReadStatus(r)
//	if err != nil {
//	    return err
//	}
//	if status.Code == protocol.CodeDatabasesPresent {
//	    err = protocol.ReadTextBlock(r, func(line string) error {
//	        atoms := protocol.SplitAtoms(line)
//	        ...
//	    })
//	}
//
// # Commands
//
// WriteCommand serializes a command line. Arguments that may contain
// whitespace are wrapped with Quote first:
//
//	err := protocol.WriteCommand(w, protocol.CmdDefine, "*", protocol.Quote("hot dog"))
//	// DEFINE * "hot dog"\r\n
//
// # Error Handling
//
// All failures are reported as *ProtocolError. Use ShouldCloseConnection to
// tell an unexpected but well-formed status (connection still in sync) from
// I/O and framing errors (connection must be dropped):
//
//	if err != nil {
//	    if protocol.ShouldCloseConnection(err) {
//	        conn.Close()
//	    }
//	    return err
//	}
//
// # Thread Safety
//
// Functions in this package hold no state. Callers must not share a reader
// or writer between concurrent exchanges.
package protocol
