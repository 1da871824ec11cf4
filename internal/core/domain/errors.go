package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrFeedNotFound = errors.New("feed not found")
	ErrInvalidInput = errors.New("invalid input")
)

// UpstreamError - TourAPI ответил кодом, отличным от "0000".
type UpstreamError struct {
	Operation  string
	ResultCode string
	ResultMsg  string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("tour api %s failed: resultCode=%s resultMsg=%s", e.Operation, e.ResultCode, e.ResultMsg)
}
