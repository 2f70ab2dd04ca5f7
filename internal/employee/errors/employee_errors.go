package employeeerrors

import (
	"net/http"

	"github.com/Pavan812100/jml-hybrid/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
