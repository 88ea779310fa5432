package render

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"one row", func(c *Config) { c.Height = 1 }},
		{"zero pixel aspect", func(c *Config) { c.PixelAspect = 0 }},
		{"zero fov", func(c *Config) { c.FOVDegrees = 0 }},
		{"straight fov", func(c *Config) { c.FOVDegrees = 180 }},
		{"zero near", func(c *Config) { c.Near = 0 }},
		{"far before near", func(c *Config) { c.Far = c.Near }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
			if _, err := NewPipeline(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewPipeline: got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigAspect(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 50
	cfg.PixelAspect = 2

	if got := cfg.Aspect(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("aspect = %v, want 0.5", got)
	}
}
