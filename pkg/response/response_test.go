package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "tasks-timeline/pkg/errors"
	"tasks-timeline/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.ErrorCode != 0 || resp.Message != response.MessageSuccess {
			t.Errorf("unexpected envelope: %+v", resp)
		}
		dMap, ok := resp.Data.(map[string]interface{})
		if !ok || dMap["foo"] != "bar" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	errTests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"http error", pkgErrors.NewHTTPError(http.StatusNotFound, "note not found"), http.StatusNotFound, "note not found"},
		{"wrapped http error", fmt.Errorf("x: %w", pkgErrors.NewHTTPError(http.StatusBadRequest, "bad date")), http.StatusBadRequest, "bad date"},
		{"plain error hidden", errors.New("db crash"), http.StatusInternalServerError, response.DefaultErrorMessage},
	}
	for _, tt := range errTests {
		t.Run("Error "+tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			response.Error(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			var resp response.Resp
			json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Message != tt.wantMessage || resp.ErrorCode != tt.wantStatus {
				t.Errorf("unexpected envelope: %+v", resp)
			}
		})
	}

	t.Run("Unavailable", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Unavailable(c, "vault unreadable", map[string]string{"root": "/nope"})

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.ErrorCode != response.UnavailableCode || resp.Message != "vault unreadable" {
			t.Errorf("unexpected envelope: %+v", resp)
		}
	})

	t.Run("TooManyRequests", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.TooManyRequests(c)

		if w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
		if !c.IsAborted() {
			t.Error("expected context to be aborted")
		}
	})
}
