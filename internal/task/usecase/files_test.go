package usecase_test

import (
	"context"
	"testing"

	"tasks-timeline/internal/task/usecase"
)

func TestListFiles(t *testing.T) {
	repo := &mockRepo{files: []string{"inbox.md", "work/plan.md", "work/2024/q1/review.md"}}
	uc := newUseCase(repo, nil, usecase.Config{DefaultFile: "inbox.md"})

	got, err := uc.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	want := []string{"📄 inbox", "📂 work / 📄 plan", "… / 📂 q1 / 📄 review"}
	if len(got.Files) != len(want) {
		t.Fatalf("got %d files, want %d", len(got.Files), len(want))
	}
	for i, f := range got.Files {
		if f.Label != want[i] {
			t.Errorf("Label[%d] = %q, want %q", i, f.Label, want[i])
		}
	}
	if got.DefaultFile != "inbox.md" {
		t.Errorf("DefaultFile = %q", got.DefaultFile)
	}

	if _, err := newUseCase(&mockRepo{fail: true}, nil, usecase.Config{}).ListFiles(context.Background()); err == nil {
		t.Error("expected repository error")
	}
}
