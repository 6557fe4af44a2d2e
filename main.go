package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/bcdannyboy/mcprice/models"
	"github.com/bcdannyboy/mcprice/pricing"
	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/cpu"
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
	"github.com/xhhuango/json"
)

// report is the JSON document written by -out: the inputs, the Monte Carlo
// result, and the analytic reference prices.
type report struct {
	Parameters       models.Parameters `json:"parameters"`
	MonteCarlo       *pricing.Result   `json:"monteCarlo"`
	BlackScholesCall float64           `json:"blackScholesCall"`
	BlackScholesPut  float64           `json:"blackScholesPut"`
}

func main() {
	// .env is an optional source of defaults; flags override it.
	_ = godotenv.Load()

	paths := flag.Int("paths", envInt("MCPRICE_PATHS", 10000000), "total number of simulated asset paths")
	workers := flag.Int("workers", envInt("MCPRICE_WORKERS", defaultWorkers()), "number of parallel simulation workers")
	spot := flag.Float64("spot", envFloat("MCPRICE_SPOT", 100.0), "spot price of the underlying")
	strike := flag.Float64("strike", envFloat("MCPRICE_STRIKE", 100.0), "strike price")
	rate := flag.Float64("rate", envFloat("MCPRICE_RATE", 0.05), "annualized risk-free rate")
	vol := flag.Float64("vol", envFloat("MCPRICE_VOL", 0.2), "annualized volatility")
	maturity := flag.Float64("maturity", envFloat("MCPRICE_MATURITY", 1.0), "time to maturity in years")
	seed := flag.Uint64("seed", 0, "base RNG seed, 0 derives one from the wall clock")
	samplerName := flag.String("sampler", pricing.SamplerPolar, "normal sampler: polar or ziggurat")
	outFile := flag.String("out", "", "write the full result as JSON to this file")
	progress := flag.Bool("progress", false, "render a progress bar while simulating")
	flag.Parse()

	baseSeed := *seed
	if baseSeed == 0 {
		baseSeed = uint64(time.Now().UnixNano())
	}

	params := models.Parameters{S: *spot, K: *strike, R: *rate, V: *vol, T: *maturity}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	cfg := pricing.Config{
		Paths:   *paths,
		Workers: *workers,
		Seed:    baseSeed,
		Sampler: *samplerName,
	}

	var pb *mpb.Progress
	if adjusted, _ := pricing.Partition(*paths, *workers); *progress && adjusted > 0 {
		pb = mpb.New(mpb.WithWidth(64))
		bar := pb.AddBar(int64(adjusted),
			mpb.PrependDecorators(decor.Name("paths ")),
			mpb.AppendDecorators(decor.Percentage()),
		)
		cfg.Progress = func(n int) { bar.IncrBy(n) }
	}

	result, err := pricing.Price(params, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if pb != nil {
		pb.Wait()
	}

	fmt.Printf("Elapsed time: %.6f seconds\n", result.Elapsed.Seconds())
	fmt.Printf("Call Price:      %.6f\n", result.CallPrice)
	fmt.Printf("Put Price:       %.6f\n", result.PutPrice)

	if *outFile != "" {
		bsCall, bsPut := models.BlackScholes(params)
		rep := report{
			Parameters:       params,
			MonteCarlo:       result,
			BlackScholesCall: bsCall,
			BlackScholesPut:  bsPut,
		}
		b, err := json.Marshal(rep)
		if err != nil {
			log.Fatalf("Error marshalling result: %s", err)
		}
		if err := os.WriteFile(*outFile, b, 0644); err != nil {
			log.Fatalf("Error writing to file %s: %s", *outFile, err)
		}
	}
}

// defaultWorkers sizes the worker pool to the logical CPU count.
func defaultWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return def
}
