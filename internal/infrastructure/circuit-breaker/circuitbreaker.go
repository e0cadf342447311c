package circuitbreaker

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = 15 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		log.Warn().Str("component", "CircuitBreaker").Str("breaker", name).
			Str("from", from.String()).Str("to", to.String()).Msg("state changed")
	}

	return gobreaker.NewCircuitBreaker[[]byte](st)
}
