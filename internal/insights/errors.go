package insights

import "errors"

// ErrNoReviews is returned when a summary is requested over an empty review
// set. It is the only error the engine surfaces; malformed individual records
// are excluded silently instead.
var ErrNoReviews = errors.New("no reviews to analyze")
