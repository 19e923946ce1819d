package config

import "github.com/fernandosanchezjr/detstream/utils"

const DefaultCount = 16

// Stream pins a named stream to a seed so runs are reproducible.
type Stream struct {
	Name string `yaml:"name"`
	Seed int64  `yaml:"seed"`
}

type Config struct {
	Streams []Stream `yaml:"streams,omitempty"`
	Count   int      `yaml:"count,omitempty"`
	Store   string   `yaml:"store,omitempty"`
}

// Default returns the configuration used when no config file exists:
// crypto-seeded identifier and flag streams.
func Default() *Config {
	return &Config{
		Streams: []Stream{
			{Name: "ids", Seed: utils.RandomInt64()},
			{Name: "flags", Seed: utils.RandomInt64()},
		},
		Count: DefaultCount,
	}
}

// Seed returns the configured seed for a named stream, or a crypto seed
// if the stream is not configured.
func (c *Config) Seed(name string) int64 {
	for _, s := range c.Streams {
		if s.Name == name {
			return s.Seed
		}
	}
	return utils.RandomInt64()
}
