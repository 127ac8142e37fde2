package compression

import (
	"fmt"

	"github.com/iamNilotpal/gzip/internal/core/domain"
	"github.com/iamNilotpal/gzip/pkg/errors"
)

// DefaultOptions returns CompressionOptions initialized with the
// recommended default values: a balanced compression level and a chunk
// size that bounds memory use without throttling throughput.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Level:     domain.DefaultLevel,
		ChunkSize: domain.DefaultChunkSize,
	}
}

// Validate checks if the compression options are valid and returns an error
// if any option is outside acceptable bounds. Levels are validated eagerly
// so an out-of-range value never reaches the underlying GZIP library.
func Validate(input *domain.CompressionOptions) error {
	if input.Level > domain.BestLevel {
		return errors.NewValidationError(
			"level", input.Level,
			fmt.Errorf("compression level must be between %d and %d, got %d", domain.StoreLevel, domain.BestLevel, input.Level),
		)
	}

	if input.ChunkSize <= 0 {
		return errors.NewValidationError(
			"chunkSize", input.ChunkSize,
			fmt.Errorf("chunk size must be positive, got %d", input.ChunkSize),
		)
	}

	return nil
}
