package dict

import (
	"github.com/pior/dict/protocol"
)

// Databases lists the databases offered by the server, keyed by name.
//
// SHOW DB answers 110 followed by one `name "description"` line per
// database. Any status of type 2 or above (554 no databases present, ...)
// yields an empty map.
func (c *Connection) Databases() (map[string]Database, error) {
	const op = "show databases"
	databases := make(map[string]Database)

	err := c.exchange(op, func() error {
		listed, err := c.showListing(op, protocol.CmdShowDatabases, func(name, description string) {
			databases[name] = Database{Name: name, Description: description}
		})
		if err != nil || !listed {
			return err
		}
		return protocol.ExpectOK(c.reader, op)
	})
	if err != nil {
		return nil, err
	}
	return databases, nil
}

// Strategies lists the matching strategies supported by the server, in the
// order the server sent them. Duplicate names are dropped.
//
// SHOW STRAT answers 111 followed by one `name "description"` line per
// strategy. Any status of type 2 or above yields an empty list.
func (c *Connection) Strategies() ([]MatchingStrategy, error) {
	const op = "show strategies"
	strategies := []MatchingStrategy{}

	err := c.exchange(op, func() error {
		seen := make(map[string]struct{})
		listed, err := c.showListing(op, protocol.CmdShowStrategies, func(name, description string) {
			if _, ok := seen[name]; ok {
				return
			}
			seen[name] = struct{}{}
			strategies = append(strategies, MatchingStrategy{Name: name, Description: description})
		})
		if err != nil || !listed {
			return err
		}
		return protocol.ExpectOK(c.reader, op)
	})
	if err != nil {
		return nil, err
	}
	return strategies, nil
}

// showListing sends a SHOW command and reads its `name "description"`
// listing. It returns false, without error, when the server answered with
// a status of type 2 or above instead of a listing.
func (c *Connection) showListing(op string, cmd protocol.CmdType, add func(name, description string)) (bool, error) {
	if err := protocol.WriteCommand(c.writer, cmd); err != nil {
		return false, err
	}

	status, err := protocol.ReadStatus(c.reader)
	if err != nil {
		return false, err
	}
	if status.Type() > protocol.TypePreliminary {
		return false, nil
	}

	err = protocol.ReadTextBlock(c.reader, func(line string) error {
		atoms := protocol.SplitAtoms(line)
		switch len(atoms) {
		case 0:
		case 1:
			add(atoms[0], "")
		default:
			add(atoms[0], atoms[1])
		}
		return nil
	})
	return err == nil, err
}

// Match returns the words matching pattern with the given strategy, in the
// order the server sent them. A word found in several databases is listed
// once.
//
// The pattern is always sent quoted:
//
//	MATCH <database> <strategy> "<pattern>"
//
// 152 introduces the matches, 552 means no match and yields an empty list.
// Any other status is an error.
func (c *Connection) Match(pattern string, strategy MatchingStrategy, database Database) ([]string, error) {
	const op = "match"
	words := []string{}

	err := c.exchange(op, func() error {
		if err := protocol.WriteCommand(c.writer, protocol.CmdMatch, database.Name, strategy.Name, protocol.Quote(pattern)); err != nil {
			return err
		}

		status, err := protocol.ReadStatus(c.reader)
		if err != nil {
			return err
		}
		switch status.Code {
		case protocol.CodeMatchesFound:
		case protocol.CodeNoMatch:
			return nil
		default:
			return protocol.NewStatusError(op, status)
		}

		seen := make(map[string]struct{})
		err = protocol.ReadTextBlock(c.reader, func(line string) error {
			atoms := protocol.SplitAtoms(line)
			if len(atoms) < 2 {
				return &protocol.ProtocolError{Op: op, Message: "malformed match line: " + line}
			}
			if _, ok := seen[atoms[1]]; !ok {
				seen[atoms[1]] = struct{}{}
				words = append(words, atoms[1])
			}
			return nil
		})
		if err != nil {
			return err
		}

		return protocol.ExpectOK(c.reader, op)
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// Define returns the definitions of word, one per database that has one.
//
// The word is always sent quoted:
//
//	DEFINE <database> "<word>"
//
// 150 is followed by one block per definition, each opened by a
// `151 word database description` status and closed by ".". The first
// status after the blocks must be 250. 552 means no definition and yields
// an empty list.
func (c *Connection) Define(word string, database Database) ([]*Definition, error) {
	const op = "define"
	definitions := []*Definition{}

	err := c.exchange(op, func() error {
		if err := protocol.WriteCommand(c.writer, protocol.CmdDefine, database.Name, protocol.Quote(word)); err != nil {
			return err
		}

		status, err := protocol.ReadStatus(c.reader)
		if err != nil {
			return err
		}
		switch status.Code {
		case protocol.CodeDefinitionsFound:
		case protocol.CodeNoMatch:
			return nil
		default:
			return protocol.NewStatusError(op, status)
		}

		for {
			line, err := protocol.ReadLine(c.reader)
			if err != nil {
				return err
			}

			status, err := protocol.ParseStatus(line)
			if err != nil {
				return err
			}
			if status.Code != protocol.CodeDefinition {
				if !status.IsOK() {
					// A final status ends the reply. A 1xx leaves its body unread and
					// breaks the connection.
					return protocol.NewStatusError(op, status)
				}
				return nil
			}

			// 151 "word" database "description"
			atoms := protocol.SplitAtoms(line)
			if len(atoms) < 3 {
				return &protocol.ProtocolError{Op: op, Message: "malformed definition header: " + line}
			}

			definition := &Definition{Word: word, Database: atoms[2]}
			if len(atoms) > 3 {
				definition.DatabaseDescription = atoms[3]
			}

			if err := protocol.ReadTextBlock(c.reader, func(line string) error {
				definition.AppendLine(line)
				return nil
			}); err != nil {
				return err
			}

			definitions = append(definitions, definition)
		}
	})
	if err != nil {
		return nil, err
	}
	return definitions, nil
}

// Info returns the description of a database (SHOW INFO), as sent by the
// server. 550 (invalid database) and any status but 112 are errors.
func (c *Connection) Info(database Database) ([]string, error) {
	const op = "show info"
	var lines []string

	err := c.exchange(op, func() error {
		var err error
		lines, err = c.showText(op, protocol.CodeDatabaseInfo, protocol.CmdShowInfo, database.Name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ServerInfo returns the server's own description (SHOW SERVER).
func (c *Connection) ServerInfo() ([]string, error) {
	const op = "show server"
	var lines []string

	err := c.exchange(op, func() error {
		var err error
		lines, err = c.showText(op, protocol.CodeServerInfo, protocol.CmdShowServer)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// showText sends a command answered by a single text block.
func (c *Connection) showText(op string, code int, cmd protocol.CmdType, args ...string) ([]string, error) {
	if err := protocol.WriteCommand(c.writer, cmd, args...); err != nil {
		return nil, err
	}

	status, err := protocol.ReadStatus(c.reader)
	if err != nil {
		return nil, err
	}
	if status.Code != code {
		return nil, protocol.NewStatusError(op, status)
	}

	lines, err := protocol.ReadText(c.reader)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []string{}
	}

	return lines, protocol.ExpectOK(c.reader, op)
}

// Identify tells the server which client is connected (CLIENT). The server
// answers 250.
func (c *Connection) Identify(text string) error {
	const op = "client"

	return c.exchange(op, func() error {
		if err := protocol.WriteCommand(c.writer, protocol.CmdClient, protocol.Quote(text)); err != nil {
			return err
		}
		return protocol.ExpectOK(c.reader, op)
	})
}
