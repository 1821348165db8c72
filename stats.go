package dict

import (
	"sync/atomic"

	"github.com/sony/gobreaker/v2"
)

// ClientStats contains statistics about client operations.
// All counters are safe for concurrent access.
type ClientStats struct {
	Databases   uint64 // Total Databases operations
	Strategies  uint64 // Total Strategies operations
	Matches     uint64 // Total Match operations
	Defines     uint64 // Total Define operations
	DefineHits  uint64 // Define operations that returned at least one definition
	Definitions uint64 // Definitions received
	Errors      uint64 // Total errors across all operations
	Rejected    uint64 // Operations refused by an open circuit breaker

	// Zero unless a circuit breaker is configured
	CircuitBreakerState  gobreaker.State
	CircuitBreakerCounts gobreaker.Counts
}

// clientStatsCollector provides internal methods for updating client stats.
// Not exported - client updates its own stats.
type clientStatsCollector struct {
	stats *ClientStats
}

func newClientStatsCollector() *clientStatsCollector {
	return &clientStatsCollector{
		stats: &ClientStats{},
	}
}

func (c *clientStatsCollector) recordDatabases() {
	atomic.AddUint64(&c.stats.Databases, 1)
}

func (c *clientStatsCollector) recordStrategies() {
	atomic.AddUint64(&c.stats.Strategies, 1)
}

func (c *clientStatsCollector) recordMatch() {
	atomic.AddUint64(&c.stats.Matches, 1)
}

func (c *clientStatsCollector) recordDefine(found int) {
	atomic.AddUint64(&c.stats.Defines, 1)
	if found > 0 {
		atomic.AddUint64(&c.stats.DefineHits, 1)
		atomic.AddUint64(&c.stats.Definitions, uint64(found))
	}
}

func (c *clientStatsCollector) recordError() {
	atomic.AddUint64(&c.stats.Errors, 1)
}

func (c *clientStatsCollector) recordRejected() {
	atomic.AddUint64(&c.stats.Rejected, 1)
}

func (c *clientStatsCollector) snapshot() ClientStats {
	return ClientStats{
		Databases:   atomic.LoadUint64(&c.stats.Databases),
		Strategies:  atomic.LoadUint64(&c.stats.Strategies),
		Matches:     atomic.LoadUint64(&c.stats.Matches),
		Defines:     atomic.LoadUint64(&c.stats.Defines),
		DefineHits:  atomic.LoadUint64(&c.stats.DefineHits),
		Definitions: atomic.LoadUint64(&c.stats.Definitions),
		Errors:      atomic.LoadUint64(&c.stats.Errors),
		Rejected:    atomic.LoadUint64(&c.stats.Rejected),
	}
}
