package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WorkerStats contains per-worker statistics
type WorkerStats struct {
	ID       int           // Worker index
	Samples  int           // Number of sample passes completed
	BusyTime time.Duration // Time spent rendering
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	NumWorkers      int
	Workers         []WorkerStats
	RenderTime      time.Duration
}

// PrimaryRays returns the number of camera rays traced
func (s RenderStats) PrimaryRays() int64 {
	return int64(s.Width) * int64(s.Height) * int64(s.SamplesPerPixel)
}

// RaysPerSecond returns the camera ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.PrimaryRays()) / s.RenderTime.Seconds()
}

// newRenderStats creates statistics with one row per worker, so workers
// that never receive a sample still appear in the table
func newRenderStats(cfg Config, numWorkers int) RenderStats {
	stats := RenderStats{
		Width:           cfg.Width,
		Height:          cfg.Height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		NumWorkers:      numWorkers,
		Workers:         make([]WorkerStats, numWorkers),
	}
	for i := range stats.Workers {
		stats.Workers[i].ID = i
	}
	return stats
}

// record adds a completed sample to the worker's statistics
func (s *RenderStats) record(result SampleResult) {
	for i := range s.Workers {
		if s.Workers[i].ID == result.WorkerID {
			s.Workers[i].Samples++
			s.Workers[i].BusyTime += result.Duration
			return
		}
	}
	s.Workers = append(s.Workers, WorkerStats{ID: result.WorkerID, Samples: 1, BusyTime: result.Duration})
}

// Table formats the per-worker statistics as a text table
func (s RenderStats) Table() string {
	workers := append([]WorkerStats(nil), s.Workers...)
	sort.Slice(workers, func(i, j int) bool { return workers[i].ID < workers[j].ID })

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Samples", "% of samples", "Busy time"})
	for _, w := range workers {
		percent := 0.0
		if s.SamplesPerPixel > 0 {
			percent = 100 * float64(w.Samples) / float64(s.SamplesPerPixel)
		}
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d", w.Samples),
			fmt.Sprintf("%02.1f %%", percent),
			w.BusyTime.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", s.SamplesPerPixel),
		fmt.Sprintf("%.0f rays/s", s.RaysPerSecond()),
		s.RenderTime.Round(time.Millisecond).String(),
	})
	table.Render()

	return buf.String()
}
