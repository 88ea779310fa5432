package render

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the frame and projection parameters.
type Config struct {
	Width  int // Frame width in pixels (or cells)
	Height int // Frame height in pixels (or cells)

	// PixelAspect is the height of one pixel divided by its width. Terminal
	// cells are roughly twice as tall as they are wide.
	PixelAspect float64

	FOVDegrees float64 // Field of view
	Near       float64 // Near clip distance, view space
	Far        float64 // Far plane distance used by the projection

	ObjectDepth float64 // Z offset applied to the mesh in world space
	Wireframe   bool    // Stroke triangle edges after filling
	Spin        bool    // Rotate the mesh about Z and X over time
}

// DefaultConfig returns the configuration of the classic spinning cube demo.
func DefaultConfig() Config {
	return Config{
		Width:       256,
		Height:      240,
		PixelAspect: 1,
		FOVDegrees:  90,
		Near:        0.1,
		Far:         1000,
		ObjectDepth: 3,
		Spin:        true,
	}
}

// Aspect returns the projection aspect ratio, height over width.
func (c Config) Aspect() float64 {
	return float64(c.Height) * c.PixelAspect / float64(c.Width)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width < 2:
		return fmt.Errorf("%w: width %d", ErrInvalidConfig, c.Width)
	case c.Height < 2:
		return fmt.Errorf("%w: height %d", ErrInvalidConfig, c.Height)
	case c.PixelAspect <= 0:
		return fmt.Errorf("%w: pixel aspect %g", ErrInvalidConfig, c.PixelAspect)
	case c.FOVDegrees <= 0 || c.FOVDegrees >= 180:
		return fmt.Errorf("%w: fov %g must be in (0, 180)", ErrInvalidConfig, c.FOVDegrees)
	case c.Near <= 0:
		return fmt.Errorf("%w: near %g must be positive", ErrInvalidConfig, c.Near)
	case c.Far <= c.Near:
		return fmt.Errorf("%w: far %g must exceed near %g", ErrInvalidConfig, c.Far, c.Near)
	}
	return nil
}
