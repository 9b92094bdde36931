package http

import (
	"errors"
	"net/http"

	"tasks-timeline/internal/task"
	"tasks-timeline/internal/task/repository"
	pkgErrors "tasks-timeline/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrTaskTooShort),
		errors.Is(err, task.ErrNoFileSelected),
		errors.Is(err, task.ErrInvalidDate),
		errors.Is(err, task.ErrInvalidRange),
		errors.Is(err, repository.ErrInvalidPath):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrFileNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

func errBadRequest(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}
