package trace

import (
	"errors"
	"math/rand/v2"
	"strconv"
)

// GenerateConfig describes a synthetic read-through workload.
type GenerateConfig struct {
	Ops      int     // Number of operations to emit.
	Keys     int     // Size of the key universe.
	Skew     float64 // Zipf exponent, must be > 1. Higher is more skewed.
	PutRatio float64 // Fraction of operations that are puts, in [0, 1].
	Seed     uint64
}

// Generate returns a trace whose keys follow a Zipf distribution over
// k0..k(Keys-1). The same config always yields the same trace.
func Generate(cfg GenerateConfig) ([]Op, error) {
	if cfg.Ops < 0 || cfg.Keys < 1 {
		return nil, errors.New("trace: need ops >= 0 and keys >= 1")
	}
	if cfg.Skew <= 1 {
		return nil, errors.New("trace: zipf skew must be greater than 1")
	}
	if cfg.PutRatio < 0 || cfg.PutRatio > 1 {
		return nil, errors.New("trace: put ratio must be within [0, 1]")
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	zipf := rand.NewZipf(rng, cfg.Skew, 1, uint64(cfg.Keys-1))

	ops := make([]Op, 0, cfg.Ops)
	for i := 0; i < cfg.Ops; i++ {
		key := "k" + strconv.FormatUint(zipf.Uint64(), 10)
		if rng.Float64() < cfg.PutRatio {
			ops = append(ops, PutOp(key, "v"+strconv.Itoa(i)))
		} else {
			ops = append(ops, GetOp(key))
		}
	}
	return ops, nil
}
