package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Renderer distributes full-frame sample passes over a worker pool and
// averages them into the final image
type Renderer struct {
	scene          Scene
	integrator     integrator.Integrator
	config         Config
	samplerFactory SamplerFactory
	logger         log.Logger
}

// NewRenderer creates a new renderer
func NewRenderer(scene Scene, integratorInst integrator.Integrator, config Config) *Renderer {
	return &Renderer{
		scene:          scene,
		integrator:     integratorInst,
		config:         config,
		samplerFactory: DefaultSamplerFactory,
		logger:         log.New("renderer"),
	}
}

// SetSamplerFactory overrides how per-sample random sources are created
func (r *Renderer) SetSamplerFactory(factory SamplerFactory) {
	r.samplerFactory = factory
}

// Config returns the renderer configuration
func (r *Renderer) Config() Config {
	return r.config
}

// Render runs every sample pass and returns the averaged frame. Any failed
// sample fails the whole render; no partial image is returned.
func (r *Renderer) Render() (*Frame, RenderStats, error) {
	if err := r.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	cfg := r.config
	samples := cfg.SamplesPerPixel

	sampleRenderer := NewSampleRenderer(r.scene, r.integrator, cfg.Width, cfg.Height, cfg.MaxDepth)
	progress := newProgressTracker(samples, r.logger)
	pool := NewWorkerPool(sampleRenderer, r.samplerFactory, progress, cfg.NumWorkers)

	stats := newRenderStats(cfg, pool.GetNumWorkers())

	checkFrameMemory(cfg.Width, cfg.Height, pool.GetNumWorkers(), r.logger)
	r.logger.Infof("rendering %dx%d with %d samples per pixel (max depth %d) using %d workers",
		cfg.Width, cfg.Height, samples, cfg.MaxDepth, pool.GetNumWorkers())

	pool.Start()
	go func() {
		for i := 0; i < samples; i++ {
			pool.SubmitTask(SampleTask{TaskID: i, Seed: cfg.Seed + int64(i)})
		}
		pool.CloseTasks()
	}()

	// Collect exactly one result per dispatched task so no worker is left
	// blocked on the result queue, even after a failure
	accumulator := NewFrame(cfg.Width, cfg.Height)
	var renderErr error
	for i := 0; i < samples; i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, ErrPoolClosed
		}

		if renderErr != nil {
			continue
		}
		if result.Error != nil {
			renderErr = result.Error
			r.logger.Errorf("sample %d failed: %v", result.TaskID, result.Error)
			continue
		}
		if err := accumulator.Add(result.Frame); err != nil {
			renderErr = fmt.Errorf("sample %d: %w", result.TaskID, err)
			continue
		}
		stats.record(result)
	}
	pool.Wait()

	if renderErr != nil {
		return nil, RenderStats{}, renderErr
	}

	accumulator.Scale(1.0 / float64(samples))
	stats.RenderTime = time.Since(start)
	r.logger.Infof("rendered %d samples in %s", samples, stats.RenderTime.Round(time.Millisecond))

	return accumulator, stats, nil
}
