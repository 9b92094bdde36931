package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithInput(t, "", args...)
}

func runWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTransformCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"due tomorrow", []string{"transform", "--tz", "UTC", "--now", "2024-03-12", "buy milk due tomorrow "}, "buy milk 📅 2024-03-13 \n"},
		{"joined args", []string{"transform", "--tz", "UTC", "--now", "2024-03-12", "call", "bob", "high "}, "call bob ⏫ \n"},
		{"nothing to do", []string{"transform", "--now", "2024-03-12", "plain"}, "plain\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("transform error = %v", err)
			}
			if got != tt.want {
				t.Errorf("transform output = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := run(t, "transform", "--now", "whenever", "x "); err == nil {
		t.Error("expected error for invalid --now")
	}
}

func TestTransformCmdStdin(t *testing.T) {
	got, err := runWithInput(t, "pay rent due today \nlow \nplain\n", "transform", "--tz", "UTC", "--now", "2024-03-12")
	if err != nil {
		t.Fatalf("transform error = %v", err)
	}
	want := "pay rent 📅 2024-03-12 \n🔽 \nplain\n"
	if got != want {
		t.Errorf("transform output = %q, want %q", got, want)
	}
}

func TestVaultCommands(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "inbox.md"), []byte("# Inbox\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "work"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "work", "plan.md"), []byte("- [ ] ship it 📅 2024-03-12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfgBody := "vault:\n  root: " + root + "\n  default_file: inbox.md\n  timezone: UTC\ntimeline:\n  forward_overdue: false\n"
	if err := os.WriteFile(cfgPath, []byte(cfgBody), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("files", func(t *testing.T) {
		out, err := run(t, "--config", cfgPath, "files")
		if err != nil {
			t.Fatalf("files error = %v", err)
		}
		if !strings.Contains(out, "* 📄 inbox") || !strings.Contains(out, "📂 work / 📄 plan") {
			t.Errorf("files output = %q", out)
		}
	})

	t.Run("add raw", func(t *testing.T) {
		out, err := run(t, "--config", cfgPath, "add", "--raw", "water", "plants")
		if err != nil {
			t.Fatalf("add error = %v", err)
		}
		if !strings.HasPrefix(out, "inbox.md:2") {
			t.Errorf("add output = %q", out)
		}
		raw, _ := os.ReadFile(filepath.Join(root, "inbox.md"))
		if string(raw) != "# Inbox\n- [ ] water plants\n" {
			t.Errorf("inbox.md = %q", raw)
		}
	})

	t.Run("add too short", func(t *testing.T) {
		if _, err := run(t, "--config", cfgPath, "add", "--raw", "x"); err == nil {
			t.Error("expected error for one-character task")
		}
	})

	t.Run("timeline", func(t *testing.T) {
		out, err := run(t, "--config", cfgPath, "timeline", "--from", "2024-03-01", "--to", "2024-03-31")
		if err != nil {
			t.Fatalf("timeline error = %v", err)
		}
		if !strings.Contains(out, "== 2024 ==") || !strings.Contains(out, "ship it") {
			t.Errorf("timeline output = %q", out)
		}
	})

	t.Run("timeline yaml", func(t *testing.T) {
		out, err := run(t, "--config", cfgPath, "timeline", "--from", "2024-03-01", "--to", "2024-03-31", "-o", "yaml")
		if err != nil {
			t.Fatalf("timeline error = %v", err)
		}
		var view struct {
			Groups []struct {
				Date  string `yaml:"date"`
				Tasks []struct {
					Status      string `yaml:"status"`
					Description string `yaml:"description"`
				} `yaml:"tasks"`
			} `yaml:"groups"`
		}
		if err := yaml.Unmarshal([]byte(out), &view); err != nil {
			t.Fatalf("invalid yaml %q: %v", out, err)
		}
		want := []string{"2024-03-12 overdue ship it"}
		var got []string
		for _, g := range view.Groups {
			for _, tk := range g.Tasks {
				got = append(got, g.Date+" "+tk.Status+" "+tk.Description)
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("timeline yaml mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("timeline unknown format", func(t *testing.T) {
		if _, err := run(t, "--config", cfgPath, "timeline", "-o", "xml"); err == nil {
			t.Error("expected error for unknown output format")
		}
	})
}
