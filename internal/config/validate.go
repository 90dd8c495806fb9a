package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Escalation.validate(); err != nil {
		return fmt.Errorf("escalation: %w", err)
	}

	if c.Notify.DispatchTimeout <= 0 {
		return fmt.Errorf("notify.dispatch_timeout must be > 0 (got %v)", c.Notify.DispatchTimeout)
	}

	return nil
}

func (e *EscalationConfig) validate() error {
	if e.FallCriticalThreshold < 0 || e.FallCriticalThreshold > 100 {
		return fmt.Errorf("fall_critical_threshold must be within [0,100] (got %v)", e.FallCriticalThreshold)
	}
	if e.FallMediumThreshold < 0 || e.FallMediumThreshold > 100 {
		return fmt.Errorf("fall_medium_threshold must be within [0,100] (got %v)", e.FallMediumThreshold)
	}
	if e.FallMediumThreshold >= e.FallCriticalThreshold {
		return fmt.Errorf("fall_medium_threshold (%v) must be below fall_critical_threshold (%v)",
			e.FallMediumThreshold, e.FallCriticalThreshold)
	}
	if e.StaleActiveAge <= 0 {
		return fmt.Errorf("stale_active_age must be > 0 (got %v)", e.StaleActiveAge)
	}
	if e.HistoryMaxLimit <= 0 {
		return fmt.Errorf("history_max_limit must be > 0 (got %d)", e.HistoryMaxLimit)
	}
	return nil
}
