package config

type AppConfig struct {
	DefaultCurrencyName     string `yaml:"default-currency"`
	CacheTTLHours           int64  `yaml:"rate-cache-ttl-hours"`
	RatePullingDelayMinutes int64  `yaml:"rate-pulling-delay-minutes"`
	RecurringDelayMinutes   int64  `yaml:"recurring-delay-minutes"`
}

// DefaultCurrency is the currency assumed for users without a profile.
func (s *AppConfig) DefaultCurrency() string {
	if s.DefaultCurrencyName == "" {
		return "PHP"
	}
	return s.DefaultCurrencyName
}

func (s *AppConfig) RateCacheTTLHours() int64 {
	if s.CacheTTLHours == 0 {
		return 24
	}
	return s.CacheTTLHours
}

func (s *AppConfig) PullingDelayMinutes() int64 {
	return s.RatePullingDelayMinutes
}

func (s *AppConfig) GenerationDelayMinutes() int64 {
	return s.RecurringDelayMinutes
}
