package models

import "math"

// BlackScholes returns the closed-form European call and put prices for the
// given parameters. It serves as the analytic reference the Monte Carlo
// estimate is checked against.
func BlackScholes(p Parameters) (call, put float64) {
	discount := math.Exp(-p.R * p.T)
	if p.V == 0 {
		// Deterministic terminal price, discounted intrinsic value.
		forward := p.S * math.Exp(p.R*p.T)
		return discount * math.Max(forward-p.K, 0), discount * math.Max(p.K-forward, 0)
	}

	sqrtT := math.Sqrt(p.T)
	d1 := (math.Log(p.S/p.K) + (p.R+0.5*p.V*p.V)*p.T) / (p.V * sqrtT)
	d2 := d1 - p.V*sqrtT

	call = p.S*normCDF(d1) - p.K*discount*normCDF(d2)
	put = p.K*discount*normCDF(-d2) - p.S*normCDF(-d1)
	return call, put
}

func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}
