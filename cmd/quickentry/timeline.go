package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tasks-timeline/internal/task"
	"tasks-timeline/pkg/datemath"
)

func timelineCmd(a *app) *cobra.Command {
	var (
		from   string
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show tasks grouped by date",
		Long: `Show the vault's tasks grouped by date. --from and --to accept YYYY-MM-DD
or relative expressions such as "today", "yesterday" or "in 2 weeks".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, err := a.useCase(ctx)
			if err != nil {
				return err
			}

			out, err := uc.Timeline(ctx, task.TimelineInput{From: from, To: to})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch output {
			case "text":
				printTimeline(w, out)
				return nil
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(newTimelineView(out))
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(newTimelineView(out))
			default:
				return fmt.Errorf("unknown output format %q (text, json, yaml)", output)
			}
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first day (default: today - timeline.days_before)")
	cmd.Flags().StringVar(&to, "to", "", "last day (default: today + timeline.days_after)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")

	return cmd
}

func printTimeline(w io.Writer, out task.TimelineOutput) {
	lastYear := 0
	for _, g := range out.Groups {
		if g.Year != lastYear {
			fmt.Fprintf(w, "== %d ==\n", g.Year)
			lastYear = g.Year
		}
		header := g.Date.Format("Mon 2006-01-02")
		if g.IsToday {
			c := out.Counters
			header += fmt.Sprintf("  (today: %d overdue, %d due, %d scheduled, %d start, %d in progress, %d unplanned, %d done)",
				c.Overdue, c.Due, c.Scheduled, c.Start, c.Process, c.Unplanned, c.Done)
		}
		fmt.Fprintln(w, header)
		for _, t := range g.Tasks {
			fmt.Fprintf(w, "  [%-9s] %s  (%s:%d)\n", t.Status, strings.TrimSpace(t.Description), t.Path, t.Line)
		}
	}
	if len(out.Groups) == 0 {
		fmt.Fprintf(w, "No tasks between %s and %s\n", datemath.Format(out.From), datemath.Format(out.To))
	}
}

// timelineView is the machine-readable shape of the timeline.
type timelineView struct {
	From     string          `json:"from" yaml:"from"`
	To       string          `json:"to" yaml:"to"`
	Today    string          `json:"today" yaml:"today"`
	Counters task.Counters   `json:"counters" yaml:"counters"`
	Groups   []dateGroupView `json:"groups" yaml:"groups"`
}

type dateGroupView struct {
	Date     string     `json:"date" yaml:"date"`
	IsToday  bool       `json:"is_today,omitempty" yaml:"is_today,omitempty"`
	Statuses []string   `json:"statuses" yaml:"statuses,flow"`
	Tasks    []taskView `json:"tasks" yaml:"tasks"`
}

type taskView struct {
	Status      string `json:"status" yaml:"status"`
	Description string `json:"description" yaml:"description"`
	Path        string `json:"path" yaml:"path"`
	Line        int    `json:"line" yaml:"line"`
}

func newTimelineView(out task.TimelineOutput) timelineView {
	v := timelineView{
		From:     datemath.Format(out.From),
		To:       datemath.Format(out.To),
		Today:    datemath.Format(out.Today),
		Counters: out.Counters,
	}
	for _, g := range out.Groups {
		gv := dateGroupView{Date: datemath.Format(g.Date), IsToday: g.IsToday}
		for _, s := range g.Statuses {
			gv.Statuses = append(gv.Statuses, string(s))
		}
		for _, t := range g.Tasks {
			gv.Tasks = append(gv.Tasks, taskView{
				Status:      string(t.Status),
				Description: t.Description,
				Path:        t.Path,
				Line:        t.Line,
			})
		}
		v.Groups = append(v.Groups, gv)
	}
	return v
}
