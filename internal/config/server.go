package config

type ServerConfig struct {
	ListenAddr string `yaml:"addr"`
	GinMode    string `yaml:"mode"`
}

func (s *ServerConfig) Addr() string {
	if s.ListenAddr == "" {
		return ":8080"
	}
	return s.ListenAddr
}

func (s *ServerConfig) Mode() string {
	return s.GinMode
}
