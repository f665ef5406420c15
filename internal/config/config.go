package config

type Config interface {
	Host() string
	Port() string

	BadRequestResponse() bool

	PprofEnabled() bool
	PprofPort() string
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Host() string             { return c.host }
func (c *config) Port() string             { return c.port }
func (c *config) BadRequestResponse() bool { return c.badRequestResponse }
func (c *config) PprofEnabled() bool       { return c.pprofEnabled }
func (c *config) PprofPort() string        { return c.pprofPort }
