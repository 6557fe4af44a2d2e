package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameters marks economic parameters the simulation would turn
// into NaN or garbage payoffs. It is raised before any path is simulated.
var ErrInvalidParameters = errors.New("invalid model parameters")

// Parameters is the immutable set of economic inputs shared read-only by
// every simulation worker.
type Parameters struct {
	S float64 `json:"spot"`         // spot price of the underlying
	K float64 `json:"strike"`       // strike price
	R float64 `json:"riskFreeRate"` // annualized risk-free rate
	V float64 `json:"volatility"`   // annualized volatility
	T float64 `json:"maturity"`     // time to maturity in years
}

// Validate reports whether the parameters define a priceable option.
// Comparisons are written so NaN inputs fail them as well.
func (p Parameters) Validate() error {
	switch {
	case !(p.S > 0) || math.IsInf(p.S, 0):
		return fmt.Errorf("%w: spot must be positive, got %g", ErrInvalidParameters, p.S)
	case !(p.K > 0) || math.IsInf(p.K, 0):
		return fmt.Errorf("%w: strike must be positive, got %g", ErrInvalidParameters, p.K)
	case !(p.T > 0) || math.IsInf(p.T, 0):
		return fmt.Errorf("%w: maturity must be positive, got %g", ErrInvalidParameters, p.T)
	case !(p.V >= 0) || math.IsInf(p.V, 0):
		return fmt.Errorf("%w: volatility must be non-negative, got %g", ErrInvalidParameters, p.V)
	case math.IsNaN(p.R) || math.IsInf(p.R, 0):
		return fmt.Errorf("%w: risk-free rate must be finite, got %g", ErrInvalidParameters, p.R)
	}
	return nil
}
