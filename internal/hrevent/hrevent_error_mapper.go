package hrevent

import (
	"errors"
	"net/http"
	"strings"

	hreventerrors "github.com/Pavan812100/jml-hybrid/internal/hrevent/errors"
	"github.com/Pavan812100/jml-hybrid/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// 23503 = foreign_key_violation
const pgForeignKeyViolation = "23503"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgForeignKeyViolation {
			return hreventerrors.ErrEmployeeReferenceBroken
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "foreign key") {
		return hreventerrors.ErrEmployeeReferenceBroken
	}

	// Store failure lain (connection refused, commit gagal, dsb) tidak
	// boleh bocor ke client; cukup 503 generik.
	return apperror.Wrap(
		err,
		apperror.CodeServiceUnavailable,
		apperror.ErrServiceUnavailable.Message,
		http.StatusServiceUnavailable,
	)
}
