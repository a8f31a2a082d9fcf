package colour

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"github.com/gammazero/workerpool"
)

// Job is a single extraction in a batch.
type Job struct {
	// Name identifies the job in results, typically a path or URL.
	Name string

	// Load produces the image. It runs on a worker goroutine.
	Load func(ctx context.Context) (image.Image, error)

	// Options configures the extraction.
	Options ImageOptions
}

// JobResult is the outcome of a Job.
type JobResult struct {
	Name   string
	Result *Result
	Err    error
}

// ExtractBatch runs jobs on a pool of workers and returns one result per job,
// in job order. Jobs not yet started when ctx is cancelled report ctx.Err().
// workers <= 0 uses runtime.NumCPU().
func ExtractBatch(ctx context.Context, jobs []Job, workers int) []JobResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]JobResult, len(jobs))
	wp := workerpool.New(workers)
	for i, job := range jobs {
		wp.Submit(func() {
			results[i] = runJob(ctx, job)
		})
	}
	wp.StopWait()

	return results
}

// runJob loads and extracts a single job.
func runJob(ctx context.Context, job Job) JobResult {
	res := JobResult{Name: job.Name}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	if job.Load == nil {
		res.Err = fmt.Errorf("%s: no image loader", job.Name)
		return res
	}

	img, err := job.Load(ctx)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", job.Name, err)
		return res
	}

	palette, err := PaletteFromImage(img, job.Options)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", job.Name, err)
		return res
	}

	res.Result = palette
	return res
}
