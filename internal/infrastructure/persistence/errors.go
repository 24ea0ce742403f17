package persistence

import (
	"errors"
	"fmt"

	"github.com/barberia/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateStoreError maps storage failures onto the domain error taxonomy.
// Record-not-found and duplicate-key keep their gorm identity so call sites
// can translate them to the specific domain error they mean there; anything
// else (connection loss, timeouts, driver faults) becomes UNAVAILABLE with
// the cause kept in the chain for logging.
func translateStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return fmt.Errorf("%w: %v", shared.ErrUnavailable, err)
}
