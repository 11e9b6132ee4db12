package bankchunk

// ProcessOptions holds configuration for statement processing.
type ProcessOptions struct {
	// Rows per chunk
	chunkSize int

	// Rows repeated between consecutive chunks
	overlap int
}

// defaultOptions returns the default processing options.
func defaultOptions() ProcessOptions {
	return ProcessOptions{
		chunkSize: 5,
		overlap:   0,
	}
}

// clone creates a copy of ProcessOptions.
func (o ProcessOptions) clone() ProcessOptions {
	return ProcessOptions{
		chunkSize: o.chunkSize,
		overlap:   o.overlap,
	}
}
