package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/mgpai22/sangam/internal/webvtt"
	"github.com/spf13/cobra"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [vtt_files...]",
	Short: "Show cue statistics for WebVTT files",
	Long: `Inspect one or more WebVTT files and print a table with the cue count,
first start time, last end time and sort state of each.

Files that fail to parse are skipped and reported together at the end.

Examples:
  sangam inspect merged.vtt
  sangam inspect alice.vtt bob.vtt carol.vtt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// per-file cue statistics
type trackStats struct {
	Path   string
	Cues   int
	Start  webvtt.Timestamp
	End    webvtt.Timestamp
	Sorted bool
}

// earliest start, latest end and cue count of one track
func buildStats(path string, track *webvtt.Track) trackStats {
	stats := trackStats{
		Path:   path,
		Cues:   len(track.Cues),
		Sorted: track.IsSorted(),
	}
	for i, cue := range track.Cues {
		if i == 0 || cue.Range.Start < stats.Start {
			stats.Start = cue.Range.Start
		}
		if cue.Range.End > stats.End {
			stats.End = cue.Range.End
		}
	}
	return stats
}

func renderStatsTable(stats []trackStats, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Cues", "Start", "End", "Sorted"})

	totalCues := 0
	for _, s := range stats {
		totalCues += s.Cues

		start, end := "-", "-"
		if s.Cues > 0 {
			start, end = s.Start.String(), s.End.String()
		}

		sorted := "yes"
		if !s.Sorted {
			sorted = "no"
		}
		if colorize {
			if s.Sorted {
				sorted = ansiGreen + sorted + ansiReset
			} else {
				sorted = ansiRed + sorted + ansiReset
			}
		}

		tw.AppendRow(table.Row{s.Path, s.Cues, start, end, sorted})
	}
	tw.AppendFooter(table.Row{"total", totalCues, "", "", ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func runInspect(cmd *cobra.Command, args []string) error {
	var errs *multierror.Error

	stats := make([]trackStats, 0, len(args))
	for _, path := range args {
		track, err := loadTrack(path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		stats = append(stats, buildStats(path, track))
	}

	if len(stats) > 0 {
		fmt.Println(renderStatsTable(stats, shouldColorize(os.Stdout)))
	}

	return errs.ErrorOrNil()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
