package repository

import "errors"

var (
	ErrInvalidPath  = errors.New("path is outside the vault or not a markdown note")
	ErrFileNotFound = errors.New("note not found")
)
