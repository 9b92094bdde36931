package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tasks-timeline/internal/task"
	"tasks-timeline/internal/task/usecase"
	"tasks-timeline/pkg/datemath"
)

func TestPreview(t *testing.T) {
	uc := newUseCase(&mockRepo{}, nil, usecase.Config{})

	tests := []struct {
		name    string
		input   task.PreviewInput
		want    string
		changed bool
		wantErr error
	}{
		{
			name:    "due tomorrow",
			input:   task.PreviewInput{Text: "buy milk due tomorrow "},
			want:    "buy milk 📅 2024-03-13 ",
			changed: true,
		},
		{
			name:    "no trigger",
			input:   task.PreviewInput{Text: "buy milk"},
			want:    "buy milk",
			changed: false,
		},
		{
			name:    "explicit now",
			input:   task.PreviewInput{Text: "today ", Now: "2024-01-31"},
			want:    "2024-01-31 ",
			changed: true,
		},
		{
			name:    "timestamp now",
			input:   task.PreviewInput{Text: "today ", Now: "2024-05-02T08:00:00Z"},
			want:    "2024-05-02 ",
			changed: true,
		},
		{
			name:    "relative now",
			input:   task.PreviewInput{Text: "tomorrow ", Now: "tomorrow"},
			want:    "2024-03-14 ",
			changed: true,
		},
		{
			name:    "invalid now",
			input:   task.PreviewInput{Text: "today ", Now: "someday"},
			wantErr: task.ErrInvalidDate,
		},
		{
			name:    "empty",
			input:   task.PreviewInput{Text: "   "},
			wantErr: task.ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Preview(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Preview() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Preview() error = %v", err)
			}
			if got.Text != tt.want || got.Changed != tt.changed || got.Original != tt.input.Text {
				t.Errorf("Preview() = %+v, want text %q changed %v", got, tt.want, tt.changed)
			}
		})
	}
}

func TestPreviewNowInVaultTimezone(t *testing.T) {
	parser, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	// 03:00 UTC on the 12th is still the 11th in New York.
	clock := func() time.Time { return time.Date(2024, 3, 12, 3, 0, 0, 0, time.UTC) }
	uc := usecase.New(&mockLogger{}, &mockRepo{}, nil, parser, usecase.Config{Clock: clock})

	tests := []struct {
		name string
		now  string
		want string
	}{
		{"date keeps its calendar day", "2024-03-11", "buy milk 📅 2024-03-11 "},
		{"timestamp converts to vault day", "2024-03-11T02:00:00Z", "buy milk 📅 2024-03-10 "},
		{"clock converts to vault day", "", "buy milk 📅 2024-03-11 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Preview(context.Background(), task.PreviewInput{Text: "buy milk due today ", Now: tt.now})
			if err != nil {
				t.Fatalf("Preview() error = %v", err)
			}
			if got.Text != tt.want {
				t.Errorf("Preview() = %q, want %q", got.Text, tt.want)
			}
		})
	}
}
