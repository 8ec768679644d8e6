package config

type RatesConfig struct {
	RatesApiKey string `yaml:"api-key"`
	RatesUrl    string `yaml:"base-url"`
}

func (r *RatesConfig) ApiKey() string {
	return r.RatesApiKey
}

func (r *RatesConfig) BaseUrl() string {
	if r.RatesUrl == "" {
		return "https://api.freecurrencyapi.com/v1"
	}
	return r.RatesUrl
}
