package limits

import (
	"testing"

	"design-service/internal/config"

	"github.com/stretchr/testify/assert"
)

func testConfig() config.LimitsConfig {
	return config.LimitsConfig{
		MaxProjectsPerUser:    10,
		MaxSpacesPerProject:   20,
		MaxImagesPerSpace:     50,
		MaxOperationsPerImage: 15,
	}
}

func TestChecker_BelowMax(t *testing.T) {
	c := NewChecker(testConfig())

	result := c.CheckImageLimit(49)
	assert.True(t, result.CanAdd)
	assert.Equal(t, 1, result.Remaining)

	result = c.CheckProjectLimit(0)
	assert.True(t, result.CanAdd)
	assert.Equal(t, 10, result.Remaining)
}

func TestChecker_AtMax(t *testing.T) {
	c := NewChecker(testConfig())

	tests := []struct {
		name   string
		result CheckResult
	}{
		{"projects", c.CheckProjectLimit(10)},
		{"spaces", c.CheckSpaceLimit(20)},
		{"images", c.CheckImageLimit(50)},
		{"operations", c.CheckOperationLimit(15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.result.CanAdd)
			assert.Equal(t, 0, tt.result.Remaining)
		})
	}
}

func TestChecker_OverMax(t *testing.T) {
	c := NewChecker(testConfig())

	result := c.CheckSpaceLimit(25)
	assert.False(t, result.CanAdd)
	assert.Equal(t, 0, result.Remaining)
}

func TestChecker_MockLimitReached(t *testing.T) {
	cfg := testConfig()
	cfg.MockLimitReached = true
	c := NewChecker(cfg)

	// The mock flag wins regardless of the current count.
	result := c.CheckImageLimit(0)
	assert.False(t, result.CanAdd)
	assert.Equal(t, 0, result.Remaining)

	result = c.CheckOperationLimit(3)
	assert.False(t, result.CanAdd)
	assert.Equal(t, 0, result.Remaining)
}
