package settlement

import "errors"

// Validation failures indicate a misconfigured caller (bad ratio or month
// key). They are never retryable.
var (
	// ErrInvalidMonthFormat means the target month is not YYYY-MM.
	ErrInvalidMonthFormat = errors.New("target month must be in YYYY-MM format")

	// ErrRatioOutOfRange means a ratio lies outside [0, 100].
	ErrRatioOutOfRange = errors.New("ratio must be between 0 and 100")

	// ErrRatioSumInvalid means the two ratios do not sum to exactly 100.
	ErrRatioSumInvalid = errors.New("ratios must sum to 100")
)
