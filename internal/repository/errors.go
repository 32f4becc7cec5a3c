package repository

import (
	"fmt"

	"github.com/pkg/errors"
)

// ioError marks err as ErrStorageIO and annotates it with the operation and slot.
func ioError(err error, op, name string) error {
	return errors.Wrapf(fmt.Errorf("%w: %w", ErrStorageIO, err), "%s slot %q", op, name)
}
