package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoItems            = errors.New("no items to analyze")
	ErrScoringUnavailable = errors.New("sentiment scoring unavailable")
)

// InadmissibleTextError identifies the first item whose text may not be classified.
type InadmissibleTextError struct {
	ID string
}

func (e *InadmissibleTextError) Error() string {
	return fmt.Sprintf("inadmissible text for item %q", e.ID)
}
