package renderer

import "fmt"

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of full-frame sample passes
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed; sample i uses Seed+i
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225, // 16:9 aspect ratio
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate checks that the configuration describes a renderable frame
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// HeightForAspect derives the image height from a width and aspect ratio
func HeightForAspect(width int, aspectRatio float64) int {
	return max(1, int(float64(width)/aspectRatio))
}
