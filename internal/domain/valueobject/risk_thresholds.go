package valueobject

import "fmt"

// RiskThresholds holds the three ascending score boundaries that drive
// decisioning. Scores at or above High are rejected, scores at or above
// Medium go to manual review, everything below is approved.
type RiskThresholds struct {
	low    int
	medium int
	high   int
}

// NewRiskThresholds validates and constructs a RiskThresholds value.
// The boundaries must satisfy 0 <= low <= medium <= high <= 100; anything
// else is a configuration error.
func NewRiskThresholds(low, medium, high int) (RiskThresholds, error) {
	if low < 0 || high > 100 {
		return RiskThresholds{}, fmt.Errorf("risk thresholds must lie in [0,100], got low=%d high=%d", low, high)
	}
	if low > medium || medium > high {
		return RiskThresholds{}, fmt.Errorf("risk thresholds must be ascending, got low=%d medium=%d high=%d", low, medium, high)
	}
	return RiskThresholds{low: low, medium: medium, high: high}, nil
}

// DefaultRiskThresholds returns the platform default boundaries.
func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{low: 20, medium: 50, high: 80}
}

// Low returns the low-risk boundary.
func (t RiskThresholds) Low() int { return t.low }

// Medium returns the manual-review boundary.
func (t RiskThresholds) Medium() int { return t.medium }

// High returns the rejection boundary.
func (t RiskThresholds) High() int { return t.high }

// IsZero returns true if the thresholds have not been set.
func (t RiskThresholds) IsZero() bool {
	return t == RiskThresholds{}
}
