package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/bcdannyboy/mcprice/models"
	"github.com/bcdannyboy/mcprice/rng"
	"golang.org/x/sync/errgroup"
)

// Sampler names accepted by Config.Sampler.
const (
	SamplerPolar    = "polar"
	SamplerZiggurat = "ziggurat"
)

// Config controls one pricing run.
type Config struct {
	// Paths is the requested number of simulated asset paths. It is
	// rounded down to a multiple of the worker count; see Partition.
	Paths int
	// Workers is the number of parallel simulation workers. Values below 1
	// are clamped to 1.
	Workers int
	// Seed is the base seed. Worker i draws from the stream seeded
	// (Seed+i, stream i), so a fixed seed makes the whole run reproducible
	// regardless of scheduling.
	Seed uint64
	// Sampler selects the normal sampler, SamplerPolar by default.
	Sampler string
	// Progress, when set, receives coarse path-count increments from all
	// workers and must be safe for concurrent use.
	Progress func(int)
}

// Result is the aggregated outcome of a pricing run.
type Result struct {
	CallPrice float64       `json:"callPrice"`
	PutPrice  float64       `json:"putPrice"`
	CallSum   float64       `json:"callSum"`
	PutSum    float64       `json:"putSum"`
	Paths     int           `json:"paths"` // adjusted path count actually simulated
	Workers   int           `json:"workers"`
	Seed      uint64        `json:"seed"`
	Elapsed   time.Duration `json:"elapsedNs"`
}

// ClampWorkers maps worker counts below 1 to a degenerate single-worker run.
func ClampWorkers(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Partition splits a requested path count evenly across workers. The
// remainder of total mod workers is dropped so every worker simulates an
// exactly equal share; callers must not assume all requested paths run.
func Partition(total, workers int) (adjusted, perWorker int) {
	workers = ClampWorkers(workers)
	perWorker = total / workers
	return perWorker * workers, perWorker
}

// Price runs the full Monte Carlo estimate: validate, partition, seed one
// stream per worker, simulate concurrently, and reduce the per-task sums
// into two discounted prices. The errgroup join is the single
// synchronization barrier; no task state is read before Wait returns, and
// the reduction below it is single-threaded over the ordered task slice.
func Price(params models.Parameters, cfg Config) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if cfg.Paths <= 0 {
		return nil, fmt.Errorf("path count must be positive, got %d", cfg.Paths)
	}

	workers := ClampWorkers(cfg.Workers)
	adjusted, perWorker := Partition(cfg.Paths, workers)
	if perWorker == 0 {
		return nil, fmt.Errorf("path count %d is smaller than worker count %d", cfg.Paths, workers)
	}

	model := models.NewGBM(params)
	tasks := make([]*Task, workers)
	for i := range tasks {
		src := rng.NewPCG32(cfg.Seed+uint64(i), uint64(i))
		sampler, err := newSampler(cfg.Sampler, src)
		if err != nil {
			return nil, err
		}
		tasks[i] = NewTask(perWorker, model, sampler, cfg.Progress)
	}

	start := time.Now()
	var g errgroup.Group
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			t.Run()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	var callSum, putSum float64
	for _, t := range tasks {
		callSum += t.CallSum
		putSum += t.PutSum
	}

	return &Result{
		CallPrice: discount(callSum, adjusted, params),
		PutPrice:  discount(putSum, adjusted, params),
		CallSum:   callSum,
		PutSum:    putSum,
		Paths:     adjusted,
		Workers:   workers,
		Seed:      cfg.Seed,
		Elapsed:   elapsed,
	}, nil
}

func newSampler(name string, src *rng.PCG32) (Sampler, error) {
	switch name {
	case "", SamplerPolar:
		return rng.NewBoxMuller(src), nil
	case SamplerZiggurat:
		return rng.NewZiggurat(src), nil
	default:
		return nil, fmt.Errorf("unknown sampler %q", name)
	}
}

// discount averages a payoff sum over the simulated paths and discounts it
// to present value.
func discount(sum float64, paths int, p models.Parameters) float64 {
	return sum / float64(paths) * math.Exp(-p.R*p.T)
}
