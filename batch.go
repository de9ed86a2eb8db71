package seedfill

import (
	"fmt"

	"github.com/gogpu/seedfill/internal/parallel"
	"github.com/gogpu/seedfill/pix"
)

// Op names an in-place operation run by a Runner.
type Op uint8

const (
	// OpBinary runs SeedfillBinary.
	OpBinary Op = iota

	// OpGray runs SeedfillGray.
	OpGray

	// OpGrayInv runs SeedfillGrayInv.
	OpGrayInv

	// OpGraySimple runs SeedfillGraySimpleIter with default options.
	OpGraySimple

	// OpGrayInvSimple runs SeedfillGrayInvSimpleIter with default options.
	OpGrayInvSimple

	// OpDistance runs DistanceFunction on Seed. Mask is ignored.
	OpDistance

	// OpSeedspread runs Seedspread with Seed as the 8 bpp output and Mask as
	// the 16 bpp distance buffer.
	OpSeedspread
)

// String returns a string representation of the operation.
func (op Op) String() string {
	switch op {
	case OpBinary:
		return "binary"
	case OpGray:
		return "gray"
	case OpGrayInv:
		return "gray-inv"
	case OpGraySimple:
		return "gray-simple"
	case OpGrayInvSimple:
		return "gray-inv-simple"
	case OpDistance:
		return "distance"
	case OpSeedspread:
		return "seedspread"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Job is one in-place operation. Buffers of different jobs in the same run
// must not overlap.
type Job struct {
	Op   Op
	Seed *pix.Buffer
	Mask *pix.Buffer
	Conn Connectivity
}

// run executes the job on the calling goroutine.
func (j Job) run() error {
	switch j.Op {
	case OpBinary:
		return SeedfillBinary(j.Seed, j.Mask, j.Conn)
	case OpGray:
		return SeedfillGray(j.Seed, j.Mask, j.Conn)
	case OpGrayInv:
		return SeedfillGrayInv(j.Seed, j.Mask, j.Conn)
	case OpGraySimple:
		_, err := SeedfillGraySimpleIter(j.Seed, j.Mask, j.Conn)
		return err
	case OpGrayInvSimple:
		_, err := SeedfillGrayInvSimpleIter(j.Seed, j.Mask, j.Conn)
		return err
	case OpDistance:
		return DistanceFunction(j.Seed, j.Conn)
	case OpSeedspread:
		return Seedspread(j.Seed, j.Mask, j.Conn)
	default:
		return fmt.Errorf("seedfill: unknown operation %d", int(j.Op))
	}
}

// Runner runs batches of independent jobs on a fixed set of goroutines.
// Each job is itself sequential; only separate jobs run concurrently.
//
// Thread safety: Run may be called from multiple goroutines. Close must not
// race with Run.
type Runner struct {
	pool *parallel.WorkerPool
}

// NewRunner creates a Runner with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewRunner(workers int) *Runner {
	return &Runner{pool: parallel.NewWorkerPool(workers)}
}

// Workers returns the number of worker goroutines.
func (r *Runner) Workers() int {
	return r.pool.Workers()
}

// Run executes every job and waits for all of them. The returned slice has
// one entry per job, nil for jobs that succeeded. After Close, jobs run on
// the calling goroutine.
func (r *Runner) Run(jobs []Job) []error {
	errs := make([]error, len(jobs))
	work := make([]func(), len(jobs))
	for i := range jobs {
		work[i] = func() {
			errs[i] = jobs[i].run()
		}
	}
	r.pool.ExecuteAll(work)

	for i, err := range errs {
		if err != nil {
			Logger().Warn("seedfill: batch job failed",
				"job", i, "op", jobs[i].Op.String(), "err", err)
		}
	}
	return errs
}

// Close stops the workers. Close is safe to call multiple times.
func (r *Runner) Close() {
	r.pool.Close()
}
