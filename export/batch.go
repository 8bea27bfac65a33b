package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// ConvertFunc converts a single input file.
// Implementations are called concurrently and must be safe for parallel use.
type ConvertFunc func(input string) error

// BatchConverter runs conversions over many input files concurrently.
type BatchConverter struct {
	convert  ConvertFunc
	pool     *ants.Pool
	progress io.Writer
	logger   *slog.Logger
}

// BatchOption configures a BatchConverter.
type BatchOption func(*BatchConverter) error

// WithPoolSize sets the worker pool size for concurrent conversion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BatchOption {
	return func(b *BatchConverter) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if b.pool != nil {
			b.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		b.pool = pool
		return nil
	}
}

// WithProgress sets where progress output is written (typically os.Stderr).
// Default is to discard it.
func WithProgress(w io.Writer) BatchOption {
	return func(b *BatchConverter) error {
		if w == nil {
			w = io.Discard
		}
		b.progress = w
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchConverter) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBatchConverter creates a batch converter that applies convert to each input.
func NewBatchConverter(convert ConvertFunc, opts ...BatchOption) (*BatchConverter, error) {
	if convert == nil {
		return nil, ErrConvertFuncRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &BatchConverter{
		convert:  convert,
		pool:     pool,
		progress: io.Discard,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			b.Release()
			return nil, optErr
		}
	}

	return b, nil
}

// Run converts all inputs, waiting for every submitted conversion to finish.
// A failed input does not stop the others; failures are joined into the
// returned error, one per input. Cancelling the context stops new submissions
// but lets in-flight conversions complete.
func (b *BatchConverter) Run(ctx context.Context, inputs []string) error {
	if len(inputs) == 0 {
		fmt.Fprintf(b.progress, "No masterlogs to convert (0 inputs)\n")
		return nil
	}

	fmt.Fprintf(b.progress, "Starting conversion of %d masterlogs (workers: %d)\n",
		len(inputs), b.pool.Cap())

	tracker := NewProgressTracker(b.progress, len(inputs), 1)
	tracker.Start()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, input := range inputs {
		if ctxErr := ctx.Err(); ctxErr != nil {
			mu.Lock()
			errs = append(errs, ctxErr)
			mu.Unlock()
			break
		}

		input := input
		wg.Add(1)
		submitErr := b.pool.Submit(func() {
			defer wg.Done()
			defer tracker.Increment(1)

			if err := b.convert(input); err != nil {
				b.logger.Error("conversion failed", "input", input, "err", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", input, err))
				mu.Unlock()
				return
			}

			b.logger.Debug("converted", "input", input)
		})
		if submitErr != nil {
			wg.Done()
			tracker.Increment(1)
			mu.Lock()
			errs = append(errs, fmt.Errorf("%s: %w", input, submitErr))
			mu.Unlock()
		}
	}

	wg.Wait()
	tracker.Finish()

	elapsed := tracker.Elapsed()
	if len(errs) > 0 {
		fmt.Fprintf(b.progress, "Conversion finished with %d failures in %v\n",
			len(errs), elapsed.Round(time.Second))
		return errors.Join(errs...)
	}

	fmt.Fprintf(b.progress, "Conversion complete. Converted %d masterlogs in %v (%.1f files/sec)\n",
		len(inputs), elapsed.Round(time.Second), float64(len(inputs))/elapsed.Seconds())

	return nil
}

// Release releases the worker pool.
// The converter should not be used after calling Release.
func (b *BatchConverter) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}
