package accuracy

import (
	"math"
	"math/rand/v2"

	"github.com/govalues/fixed/internal/poly"
)

// Report summarizes the errors of one operation in one format and tier.
type Report struct {
	Op      string
	Format  Format
	Tier    poly.Tier
	Samples int // measured calls
	Skipped int // arguments outside of the domain or results out of range
	Avg     float64
	Max     float64
	Worst   []float64 // arguments of the largest error
}

// Exact reports whether every measured call returned the reference value.
func (r Report) Exact() bool {
	return r.Max == 0
}

// Bits returns the number of correct bits, -log2(Max).
// It is +Inf for exact operations.
func (r Report) Bits() float64 {
	return -math.Log2(r.Max)
}

// Run measures op on its basic values and on samples arguments drawn from
// each of its input generator sets.
// The same seed always produces the same report.
func Run(op *Op, f Format, t poly.Tier, samples int, seed uint64) Report {
	rng := rand.New(rand.NewPCG(seed, uint64(f)))
	r := Report{
		Op:     op.FuncName(t),
		Format: f,
		Tier:   t,
	}
	var total float64
	measure := func(raw []float64) {
		args := make([]float64, len(raw))
		for i, v := range raw {
			args[i] = f.Quantize(v)
		}
		if op.Domain != nil && !op.Domain(args) {
			r.Skipped++
			return
		}
		want := op.Ref(args)
		if math.IsNaN(want) || !f.inRange(want) {
			r.Skipped++
			return
		}
		err := op.Err(args, op.eval(f, t, args), want)
		r.Samples++
		total += err
		if err >= r.Max {
			r.Max = err
			r.Worst = args
		}
	}

	for _, args := range op.Basic {
		measure(args)
	}
	for _, gens := range op.Inputs {
		cols := make([][]float64, len(gens))
		for i, g := range gens {
			cols[i] = g(rng, samples)
		}
		raw := make([]float64, len(gens))
		for j := 0; j < samples; j++ {
			for i := range cols {
				raw[i] = cols[i][j]
			}
			measure(raw)
		}
	}
	if r.Samples > 0 {
		r.Avg = total / float64(r.Samples)
	}
	return r
}

// RunAll measures every registered operation in every format and tier.
// Untiered operations are measured once per format.
func RunAll(samples int, seed uint64) []Report {
	var res []Report
	for _, op := range registry {
		for _, f := range Formats {
			for _, t := range poly.Tiers {
				if !op.Tiered && t != poly.Precise {
					break
				}
				res = append(res, Run(op, f, t, samples, seed))
			}
		}
	}
	return res
}
