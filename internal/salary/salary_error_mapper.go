package salary

import (
	"errors"
	"net/http"

	salaryerrors "glamist-payroll/internal/salary/errors"
	"glamist-payroll/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrSalaryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", "23514":
			// not-null / check violation: the store rejected the write
			return apperror.Wrap(
				err,
				apperror.CodeInternalError,
				"Salary record was rejected by the store",
				http.StatusInternalServerError,
			)
		}
	}

	return err
}
