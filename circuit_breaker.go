package dict

import (
	"time"

	"github.com/pior/dict/protocol"
	"github.com/sony/gobreaker/v2"
)

// NewCircuitBreakerConfig returns a function that creates a circuit breaker
// for a server. This is a helper for common use cases.
//
// Only errors that leave the connection unusable count as failures: an
// unknown database or a rejected argument does not trip the breaker.
func NewCircuitBreakerConfig(maxRequests uint32, interval, timeout time.Duration) func(string) *gobreaker.CircuitBreaker[any] {
	return func(serverAddr string) *gobreaker.CircuitBreaker[any] {
		settings := gobreaker.Settings{
			Name:        serverAddr,
			MaxRequests: maxRequests,
			Interval:    interval,
			Timeout:     timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
			IsSuccessful: func(err error) bool {
				return !protocol.ShouldCloseConnection(err)
			},
		}
		return gobreaker.NewCircuitBreaker[any](settings)
	}
}
