package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"tasks-timeline/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"date", response.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, loc)), `"2024-05-01"`},
		{"date keeps location", response.Date(time.Date(2024, 5, 1, 1, 0, 0, 0, loc)), `"2024-05-01"`},
		{"datetime", response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)), `"2024-05-01 15:30:00"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Marshal() = %s, want %s", b, tt.want)
			}
		})
	}
}
