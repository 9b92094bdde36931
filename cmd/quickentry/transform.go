package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tasks-timeline/pkg/datemath"
	"tasks-timeline/pkg/quickentry"
)

func transformCmd() *cobra.Command {
	var (
		now string
		tz  string
	)

	cmd := &cobra.Command{
		Use:   "transform [text...]",
		Short: "Rewrite quick-entry shorthand and print the result",
		Long: `Rewrite quick-entry shorthand into task markers and dates.

A shorthand only fires once it is followed by a space, so quote the text and
keep the trailing space:

  quickentry transform "buy milk due tomorrow "
  quickentry transform --now 2024-03-12 "standup friday "

Without arguments, lines piped on stdin are rewritten one by one:

  cat inbox.txt | quickentry transform`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := datemath.NewParser(tz)
			if err != nil {
				return err
			}
			ref := time.Now()
			if now != "" {
				if ref, err = parser.Parse(now, ref); err != nil {
					return fmt.Errorf("invalid --now: %w", err)
				}
			}
			ref = ref.In(parser.Location())

			if len(args) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), quickentry.Transform(strings.Join(args, " "), ref))
				return nil
			}
			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return errors.New("no text given: pass it as arguments or pipe it on stdin")
			}
			return transformLines(in, cmd.OutOrStdout(), ref)
		},
	}

	cmd.Flags().StringVar(&now, "now", "", "reference date (YYYY-MM-DD or relative, e.g. tomorrow)")
	cmd.Flags().StringVar(&tz, "tz", "Local", "IANA timezone of the reference date")

	return cmd
}

// transformLines rewrites every line read from r. A newline is not a trigger,
// so a shorthand ending a line fires only when followed by a space.
func transformLines(r io.Reader, w io.Writer, now time.Time) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fmt.Fprintln(w, quickentry.Transform(sc.Text(), now))
	}
	return sc.Err()
}
