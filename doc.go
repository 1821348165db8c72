// Package dict is a client for the DICT dictionary server protocol
// (RFC 2229).
//
// # Connections
//
// A Connection owns one TCP stream. It is returned only once the server
// greeting has been accepted, and runs one exchange at a time:
//
//	conn, err := dict.Dial("dict.org")
//	if err != nil {
//	    return err
//	}
//	defer conn.Close()
//
//	definitions, err := conn.Define("serendipity", dict.AnyDatabase())
//
// Databases, Strategies, Match and Define cover the lookup commands. Info
// and ServerInfo return the server's free-form descriptions.
//
// # Errors
//
// Every failure is a *protocol.ProtocolError, circuit breaker rejections
// included. When the server answered with an unexpected final status (550
// invalid database, ...) the status is available through protocol.StatusOf
// and the connection stays usable. Any other error, an unexpected 1xx status
// included, leaves the stream out of sync: the connection is marked broken
// and refuses further queries.
//
//	if protocol.ShouldCloseConnection(err) {
//	    conn.Close()
//	}
//
// # Client
//
// Client wraps a Connection with structured logging (log/slog), per
// operation statistics and an optional circuit breaker:
//
//	client, err := dict.NewClient(ctx, "dict.org", dict.Config{
//	    ClientName:        "myapp 1.0",
//	    NewCircuitBreaker: dict.NewCircuitBreakerConfig(3, time.Minute, 10*time.Second),
//	})
//
// Servers spreads lookups over mirrors: the same word always goes to the
// same server.
package dict
