package dict

// Querier is the set of DICT lookups shared by Connection and Client.
type Querier interface {
	Databases() (map[string]Database, error)
	Strategies() ([]MatchingStrategy, error)
	Match(pattern string, strategy MatchingStrategy, database Database) ([]string, error)
	Define(word string, database Database) ([]*Definition, error)
}

var (
	_ Querier = (*Connection)(nil)
	_ Querier = (*Client)(nil)
)
