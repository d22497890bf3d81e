package units

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Ingest reads whitespace separated integers from r into the store until
// end of stream or the first malformed token. Both end ingestion without
// error. It returns the number of tokens parsed, including dropped ones.
func (s *Store) Ingest(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	parsed := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return parsed, err
		}
		value, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			return parsed, nil
		}
		parsed++
		if err := s.Append(value); err != nil {
			return parsed, err
		}
	}
	err := scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		// an oversized token cannot be a valid cost; treat it as malformed
		return parsed, nil
	}
	if err != nil {
		return parsed, fmt.Errorf("reading units: %w", err)
	}
	return parsed, nil
}
