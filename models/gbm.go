package models

import "math"

// GBM evaluates terminal asset prices under risk-neutral geometric Brownian
// motion. The drift-adjusted spot and the volatility term are invariant per
// batch, so they are computed once at construction rather than per path.
type GBM struct {
	params   Parameters
	sAdjust  float64
	volSqrtT float64
}

// NewGBM precomputes the per-batch constants for the given parameters.
func NewGBM(p Parameters) GBM {
	return GBM{
		params:   p,
		sAdjust:  p.S * math.Exp(p.T*(p.R-0.5*p.V*p.V)),
		volSqrtT: math.Sqrt(p.V * p.V * p.T),
	}
}

// Params returns the parameters the model was built from.
func (g GBM) Params() Parameters { return g.params }

// TerminalPrice maps one standard normal variate to a terminal asset price.
func (g GBM) TerminalPrice(z float64) float64 {
	return g.sAdjust * math.Exp(g.volSqrtT*z)
}

// Payoffs returns the call and put payoffs for the terminal price generated
// by z. Both payoffs come from the same terminal price, so per-path call and
// put estimates stay correlated the way a single simulated market would make
// them.
func (g GBM) Payoffs(z float64) (call, put float64) {
	sT := g.TerminalPrice(z)
	return math.Max(sT-g.params.K, 0), math.Max(g.params.K-sT, 0)
}
