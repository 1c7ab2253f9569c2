// Package latency implements the link latency model: a pure function of
// (sender, receiver, payload size) returning a simulated propagation delay,
// fed from the single shared deterministic stream.
package latency

import "github.com/klaytn-labs/p2psim/internal/simrand"

// slowBandwidth and fastBandwidth are the per-ms payload units used when
// either endpoint is slow, or when both are fast, respectively.
const (
	slowBandwidth = 5.0
	fastBandwidth = 100.0
)

// Compute returns ρ + size/c + d, where ρ ~ Uniform[10,500], c is 5 if
// either endpoint is slow else 100, and d ~ Exponential(mean=96/c).
// Randomness is drawn in that order (uniform, then exponential) from the
// shared rng so runs stay reproducible under a fixed seed.
func Compute(rng *simrand.Source, senderSlow, receiverSlow bool, size int) float64 {
	rho := rng.Uniform(10, 500)

	c := fastBandwidth
	if senderSlow || receiverSlow {
		c = slowBandwidth
	}

	d := rng.Exponential(96.0 / c)
	return rho + float64(size)/c + d
}
