package salaryerrors

import (
	"net/http"

	"glamist-payroll/internal/shared/apperror"
)

var (
	ErrInvalidSalaryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary record id",
		http.StatusBadRequest,
	)
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)
	ErrEmptySelection = apperror.New(
		apperror.CodeInvalidInput,
		"No salary records selected for processing",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payment date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
