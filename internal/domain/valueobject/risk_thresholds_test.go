package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRiskThresholds(t *testing.T) {
	tests := []struct {
		name              string
		low, medium, high int
		wantErr           bool
	}{
		{"defaults", 20, 50, 80, false},
		{"all equal", 50, 50, 50, false},
		{"full range", 0, 50, 100, false},
		{"negative low", -1, 50, 80, true},
		{"high above 100", 20, 50, 101, true},
		{"low above medium", 60, 50, 80, true},
		{"medium above high", 20, 90, 80, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRiskThresholds(tt.low, tt.medium, tt.high)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.low, got.Low())
			assert.Equal(t, tt.medium, got.Medium())
			assert.Equal(t, tt.high, got.High())
		})
	}
}

func TestDefaultRiskThresholds(t *testing.T) {
	thresholds := DefaultRiskThresholds()
	assert.Equal(t, 20, thresholds.Low())
	assert.Equal(t, 50, thresholds.Medium())
	assert.Equal(t, 80, thresholds.High())
	assert.False(t, thresholds.IsZero())
}
