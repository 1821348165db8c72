package protocol

// CmdType represents a DICT command verb, optionally followed by its
// fixed sub-command (SHOW DB, SHOW STRAT, ...).
type CmdType string

// Protocol delimiters
const (
	// CRLF is the line terminator for both requests and responses
	CRLF = "\r\n"

	// Space separates command atoms
	Space = " "

	// Terminator is the line that ends a text block
	Terminator = "."
)

// DefaultPort is the TCP port assigned to DICT by IANA.
const DefaultPort = 2628

// Commands emitted by the client.
//
// Wire formats:
//
//	SHOW DB\r\n
//	SHOW STRAT\r\n
//	SHOW INFO <database>\r\n
//	SHOW SERVER\r\n
//	MATCH <database> <strategy> "<pattern>"\r\n
//	DEFINE <database> "<word>"\r\n
//	CLIENT <text>\r\n
//	QUIT\r\n
const (
	CmdShowDatabases  CmdType = "SHOW DB"
	CmdShowStrategies CmdType = "SHOW STRAT"
	CmdShowInfo       CmdType = "SHOW INFO"
	CmdShowServer     CmdType = "SHOW SERVER"
	CmdMatch          CmdType = "MATCH"
	CmdDefine         CmdType = "DEFINE"
	CmdClient         CmdType = "CLIENT"
	CmdQuit           CmdType = "QUIT"
)

// Status codes consumed by the client (RFC 2229 §3).
const (
	// Text block follows
	CodeDatabasesPresent  = 110 // n databases present - text follows
	CodeStrategiesPresent = 111 // n strategies available - text follows
	CodeDatabaseInfo      = 112 // database information follows
	CodeServerInfo        = 114 // server information follows

	// Definitions and matches
	CodeDefinitionsFound = 150 // n definitions retrieved - definitions follow
	CodeDefinition       = 151 // word database name - text follows
	CodeMatchesFound     = 152 // n matches found - text follows

	// Connection
	CodeBanner  = 220 // text msg-id
	CodeClosing = 221 // closing connection

	CodeOK = 250 // ok (optional timing information here)

	CodeServerUnavailable = 420 // server temporarily unavailable
	CodeShuttingDown      = 421 // server shutting down at operator request

	CodeSyntaxError             = 500 // syntax error, command not recognized
	CodeIllegalParameters       = 501 // syntax error, illegal parameters
	CodeNotImplemented          = 502 // command not implemented
	CodeParameterNotImplemented = 503 // command parameter not implemented
	CodeInvalidDatabase         = 550 // invalid database, use "SHOW DB" for list
	CodeInvalidStrategy         = 551 // invalid strategy, use "SHOW STRAT" for list
	CodeNoMatch                 = 552 // no match
	CodeNoDatabases             = 554 // no databases present
	CodeNoStrategies            = 555 // no strategies available
)

// Status types (leading digit of a status code).
const (
	TypePreliminary    = 1
	TypeCompletion     = 2
	TypeIntermediate   = 3
	TypeTransientError = 4
	TypePermanentError = 5
)

// Limits
const (
	// MinCode and MaxCode bound valid status codes
	MinCode = 100
	MaxCode = 599

	// MaxLineLength is the longest command line the RFC allows, CRLF included
	MaxLineLength = 1024
)
