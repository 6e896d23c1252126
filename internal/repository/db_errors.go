package repository

import (
	"context"
	"errors"
	"fmt"
)

// dbError flattens a driver error into text. Context cancellation and
// deadline errors stay matchable with errors.Is, including the case where the
// driver reports a broken connection after the context expired.
func dbError(ctx context.Context, msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w (%s)", msg, ctxErr, err.Error())
	}
	return errors.New(msg + ": " + err.Error())
}
