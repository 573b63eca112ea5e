package renderer

import (
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SamplerFactory creates the random source owned by a single sample task
type SamplerFactory func(seed int64) core.Sampler

// DefaultSamplerFactory seeds a math/rand backed sampler
func DefaultSamplerFactory(seed int64) core.Sampler {
	return core.NewSeededSampler(seed)
}

// SampleTask represents one full-frame sample pass
type SampleTask struct {
	TaskID int
	Seed   int64
}

// SampleResult contains the frame rendered for a task
type SampleResult struct {
	TaskID   int
	WorkerID int
	Frame    *Frame
	Duration time.Duration
	Error    error
}

// WorkerPool manages parallel sample rendering
type WorkerPool struct {
	taskQueue   chan SampleTask
	resultQueue chan SampleResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual sample tasks
type Worker struct {
	ID             int
	renderer       *SampleRenderer
	samplerFactory SamplerFactory
	progress       *progressTracker
	taskQueue      chan SampleTask
	resultQueue    chan SampleResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Both queues are bounded by the worker count.
func NewWorkerPool(renderer *SampleRenderer, samplerFactory SamplerFactory, progress *progressTracker, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkerCount()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan SampleTask, numWorkers),
		resultQueue: make(chan SampleResult, numWorkers),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:             i,
			renderer:       renderer,
			samplerFactory: samplerFactory,
			progress:       progress,
			taskQueue:      wp.taskQueue,
			resultQueue:    wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// SubmitTask submits a sample task, blocking while the queue is full
func (wp *WorkerPool) SubmitTask(task SampleTask) {
	wp.taskQueue <- task
}

// CloseTasks signals that no more tasks will be submitted
func (wp *WorkerPool) CloseTasks() {
	close(wp.taskQueue)
}

// Wait blocks until every worker has exited, then closes the result queue
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
	close(wp.resultQueue)
}

// GetResult retrieves a completed sample result
func (wp *WorkerPool) GetResult() (SampleResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		result := w.render(task)
		if w.progress != nil {
			w.progress.complete()
		}
		w.resultQueue <- result
	}
}

// render runs a single task. A panic fails the task instead of the process.
func (w *Worker) render(task SampleTask) (result SampleResult) {
	start := time.Now()
	result = SampleResult{TaskID: task.TaskID, WorkerID: w.ID}

	defer func() {
		if r := recover(); r != nil {
			result.Frame = nil
			result.Error = fmt.Errorf("%w: sample %d on worker %d: %v", ErrWorkerPanic, task.TaskID, w.ID, r)
		}
		result.Duration = time.Since(start)
	}()

	result.Frame = w.renderer.RenderFrame(w.samplerFactory(task.Seed))
	return result
}
