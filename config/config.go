package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the exchange credentials for the demo binary. The api clients
// themselves take the key and secret explicitly.
type Config struct {
	Exchange  string `yaml:"exchange"`
	APIKey    string `yaml:"api_key"`
	SecretKey string `yaml:"secret_key"`
}

// Load reads a yaml config file. FTX_API_KEY and FTX_SECRET_KEY environment
// variables override the file so secrets can stay out of it.
func Load(path string) (*Config, error) {
	c := &Config{Exchange: "ftx"}
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(bs, c); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if v := os.Getenv("FTX_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("FTX_SECRET_KEY"); v != "" {
		c.SecretKey = v
	}
	return c, nil
}
