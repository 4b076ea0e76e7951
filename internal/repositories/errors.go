package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is wrapped by every lookup that does not resolve to a row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is wrapped when an insert violates a unique index.
var ErrDuplicate = errors.New("duplicate record")

// duplicate wraps err with ErrDuplicate when the database reported a unique
// index violation. It needs a connection opened with TranslateError.
func duplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(ErrDuplicate, err)
	}
	return err
}
