package persistence

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"gorm.io/gorm"

	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// translateError maps driver failures to domain errors. A missing row becomes notFound;
// deadline and connectivity failures become transient StoreErrors. Anything else is returned as is.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return domainerror.NewStoreError(domainerror.ErrCodeStoreTimeout, "record store timed out", errors.Join(domainerror.ErrStoreTimeout, err))
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone):
		return domainerror.NewStoreError(domainerror.ErrCodeStoreUnavailable, "record store unavailable", errors.Join(domainerror.ErrStoreUnavailable, err))
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domainerror.NewStoreError(domainerror.ErrCodeStoreUnavailable, "record store unavailable", errors.Join(domainerror.ErrStoreUnavailable, err))
	}

	return err
}
