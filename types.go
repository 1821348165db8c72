package dict

import "strings"

// Reserved database names (RFC 2229 §3.2).
const (
	// DatabaseAny searches all databases and returns every match
	DatabaseAny = "*"

	// DatabaseFirstMatch searches all databases and stops at the first one with a match
	DatabaseFirstMatch = "!"
)

// StrategyDefault asks the server to use its default matching strategy.
const StrategyDefault = "."

// Database describes one dictionary database served by the server.
type Database struct {
	Name        string
	Description string
}

// AnyDatabase returns the "*" sentinel database.
func AnyDatabase() Database {
	return Database{Name: DatabaseAny, Description: "All databases"}
}

// FirstMatchDatabase returns the "!" sentinel database.
func FirstMatchDatabase() Database {
	return Database{Name: DatabaseFirstMatch, Description: "First database with a match"}
}

// IsSentinel returns true for the reserved "*" and "!" names.
func (d Database) IsSentinel() bool {
	return d.Name == DatabaseAny || d.Name == DatabaseFirstMatch
}

func (d Database) String() string {
	return d.Name
}

// MatchingStrategy describes a pattern matching algorithm (prefix, substring, ...).
type MatchingStrategy struct {
	Name        string
	Description string
}

// DefaultStrategy returns the "." sentinel strategy.
func DefaultStrategy() MatchingStrategy {
	return MatchingStrategy{Name: StrategyDefault, Description: "Server default"}
}

func (s MatchingStrategy) String() string {
	return s.Name
}

// Definition is one definition of a word, as found in one database.
type Definition struct {
	Word                string
	Database            string
	DatabaseDescription string
	Lines               []string
}

// AppendLine adds a line to the body of the definition.
func (d *Definition) AppendLine(line string) {
	d.Lines = append(d.Lines, line)
}

// Text returns the body of the definition, one line per line.
func (d *Definition) Text() string {
	return strings.Join(d.Lines, "\n")
}
