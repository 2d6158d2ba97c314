package colorenc

// ConvertOption configures bulk conversion with ConvertSlice.
//
// Example:
//
//	// Default: parallel above 16384 colors on the shared pool
//	n := colorenc.ConvertSlice(dst, src)
//
//	// Always serial
//	n := colorenc.ConvertSlice(dst, src, colorenc.WithWorkers(1))
type ConvertOption func(*convertOptions)

type convertOptions struct {
	workers   int
	threshold int
	chunk     int
}

// DefaultParallelThreshold is the slice length from which ConvertSlice
// splits work across goroutines.
const DefaultParallelThreshold = 16384

func defaultConvertOptions() convertOptions {
	return convertOptions{
		workers:   0, // shared pool
		threshold: DefaultParallelThreshold,
	}
}

// WithWorkers sets the number of goroutines. 1 converts on the calling
// goroutine; 0 uses the shared pool sized to GOMAXPROCS; other values
// start a temporary pool of that size for the call.
func WithWorkers(n int) ConvertOption {
	return func(o *convertOptions) {
		o.workers = max(n, 0)
	}
}

// WithParallelThreshold sets the minimum slice length converted in
// parallel.
func WithParallelThreshold(n int) ConvertOption {
	return func(o *convertOptions) {
		o.threshold = n
	}
}

// WithChunkSize sets how many colors each parallel task converts.
// 0 picks a size that gives every worker a few tasks.
func WithChunkSize(n int) ConvertOption {
	return func(o *convertOptions) {
		o.chunk = max(n, 0)
	}
}
