package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "tasks-timeline/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantOK     bool
		wantStatus int
	}{
		{"direct", pkgErrors.NewHTTPError(http.StatusNotFound, "note not found"), true, http.StatusNotFound},
		{"wrapped", fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusBadRequest, "bad")), true, http.StatusBadRequest},
		{"plain", fmt.Errorf("boom"), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pkgErrors.AsHTTPError(tt.err)
			if ok != tt.wantOK {
				t.Fatalf("AsHTTPError() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", got.StatusCode, tt.wantStatus)
			}
		})
	}
}
