package hreventerrors

import (
	"net/http"

	"github.com/Pavan812100/jml-hybrid/internal/shared/apperror"
)

var (
	ErrInvalidEventType = apperror.New(
		apperror.CodeInvalidEventType,
		"Invalid event_type. Use one of [joiner, leaver, mover]",
		http.StatusBadRequest,
	)
	ErrMissingEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id is required",
		http.StatusBadRequest,
	)
	// ErrEmployeeReferenceBroken seharusnya tidak pernah terjadi karena
	// upsert selalu berjalan sebelum append. Kalau sampai muncul berarti
	// invariant store rusak, jadi dianggap server error.
	ErrEmployeeReferenceBroken = apperror.New(
		apperror.CodeInternalError,
		"Event references an unknown employee",
		http.StatusInternalServerError,
	)
)
