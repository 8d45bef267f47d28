package limits

import "design-service/internal/config"

// CheckResult is the outcome of an advisory limit check.
type CheckResult struct {
	CanAdd    bool `json:"can_add"`
	Remaining int  `json:"remaining"`
}

// Checker evaluates current counts against the configured maxima. The checks
// are advisory: they gate create operations in the service layer and are not
// enforced by the database.
type Checker struct {
	cfg config.LimitsConfig
}

func NewChecker(cfg config.LimitsConfig) *Checker {
	return &Checker{cfg: cfg}
}

func (c *Checker) CheckProjectLimit(current int) CheckResult {
	return c.check(current, c.cfg.MaxProjectsPerUser)
}

func (c *Checker) CheckSpaceLimit(current int) CheckResult {
	return c.check(current, c.cfg.MaxSpacesPerProject)
}

func (c *Checker) CheckImageLimit(current int) CheckResult {
	return c.check(current, c.cfg.MaxImagesPerSpace)
}

func (c *Checker) CheckOperationLimit(current int) CheckResult {
	return c.check(current, c.cfg.MaxOperationsPerImage)
}

func (c *Checker) check(current, max int) CheckResult {
	if c.cfg.MockLimitReached {
		return CheckResult{CanAdd: false, Remaining: 0}
	}

	if current >= max {
		return CheckResult{CanAdd: false, Remaining: 0}
	}

	return CheckResult{CanAdd: true, Remaining: max - current}
}
