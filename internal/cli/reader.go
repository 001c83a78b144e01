package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// ErrInputTooLarge is returned when input exceeds the reader limit.
var ErrInputTooLarge = errors.New("input too large")

// NonBlockingReader provides context-aware reading of piped article text.
type NonBlockingReader struct {
	reader io.Reader
	limit  int64
}

// NewNonBlockingReader creates a reader that accepts at most limit bytes.
// A non-positive limit disables the check.
func NewNonBlockingReader(reader io.Reader, limit int64) *NonBlockingReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &NonBlockingReader{
		reader: reader,
		limit:  limit,
	}
}

// ReadAll reads until EOF, respecting context cancellation.
func (r *NonBlockingReader) ReadAll(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value []byte
	}
	resultCh := make(chan result, 1)

	go func() {
		src := r.reader
		if r.limit > 0 {
			src = io.LimitReader(r.reader, r.limit+1)
		}
		value, err := io.ReadAll(src)
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine finishes on its own once the source closes
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			return "", fmt.Errorf("failed to read input: %w", res.err)
		}
		if r.limit > 0 && int64(len(res.value)) > r.limit {
			return "", fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, r.limit)
		}
		return string(res.value), nil
	}
}
