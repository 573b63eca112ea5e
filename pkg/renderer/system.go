package renderer

import (
	"runtime"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// bytesPerPixel is the in-memory size of one accumulated color
const bytesPerPixel = 24

// DefaultWorkerCount returns the number of logical CPUs
func DefaultWorkerCount() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// estimateFrameMemory returns the bytes needed by the accumulator plus every
// frame that can be in flight at once (one per worker and one per queue slot)
func estimateFrameMemory(width, height, numWorkers int) uint64 {
	frames := uint64(1 + 2*numWorkers)
	return frames * uint64(width) * uint64(height) * bytesPerPixel
}

// checkFrameMemory warns when the frame buffers may not fit in available memory
func checkFrameMemory(width, height, numWorkers int, logger log.Logger) {
	needed := estimateFrameMemory(width, height, numWorkers)

	vm, err := mem.VirtualMemory()
	if err != nil {
		logger.Debugf("could not query available memory: %v", err)
		return
	}

	logger.Debugf("frame buffers need %d MiB, %d MiB available", needed>>20, vm.Available>>20)
	if needed > vm.Available {
		logger.Warningf("frame buffers need %d MiB but only %d MiB is available; consider fewer workers",
			needed>>20, vm.Available>>20)
	}
}
