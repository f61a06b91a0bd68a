package memcache

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// CircuitBreaker guards the exchanges against a single server. Execute
// runs the operation unless the breaker is open, in which case it fails
// fast without touching the pool.
//
// Satisfied by *gobreaker.CircuitBreaker[bool].
type CircuitBreaker interface {
	Execute(op func() (bool, error)) (bool, error)
}

// NewCircuitBreakerConfig returns a factory creating one circuit breaker
// per server address, for use as Config.NewCircuitBreaker.
//
// The breaker trips when at least 3 requests were seen in the interval
// and 60% of them failed. Only errors that cost a connection count as
// failures; client-side rejections (bad key, bad query) do not trip it.
func NewCircuitBreakerConfig(maxRequests uint32, interval, timeout time.Duration) func(serverAddr string) CircuitBreaker {
	return func(serverAddr string) CircuitBreaker {
		settings := gobreaker.Settings{
			Name:        serverAddr,
			MaxRequests: maxRequests,
			Interval:    interval,
			Timeout:     timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
		}
		return gobreaker.NewCircuitBreaker[bool](settings)
	}
}
