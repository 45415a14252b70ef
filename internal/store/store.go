package store

import (
	"errors"
	"fmt"

	"github.com/anzeg/najdeno/internal/model"
)

// persistErr tags a storage failure so callers can match model.ErrPersistence.
func persistErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(model.ErrPersistence, err))
}
