package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mgpai22/sangam/internal/manifest"
	"github.com/mgpai22/sangam/internal/webvtt"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [vtt_files...]",
	Short: "Merge per-speaker WebVTT files into a single track",
	Long: `Merge one WebVTT file per speaker into a single track ordered by cue
start time.

Speakers are paired with files positionally: the first speaker names
the first file, and so on. Every cue is tagged with its file's speaker
using a <v> voice span. Cues sharing a start time keep the order of
the input files. The pairs can also come from a TOML or YAML manifest
instead of flags.

The merged track is printed to stdout unless --output is given.

Examples:
  sangam merge alice.vtt bob.vtt --speakers alice,bob
  sangam merge a.vtt b.vtt c.vtt -s anna,ben,cleo -o merged.vtt
  sangam merge --manifest tracks.toml -o merged.vtt`,
	Args: cobra.ArbitraryArgs,
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().
		StringSliceP("speakers", "s", nil, "Comma-separated speaker names, one per file (in order)")
	mergeCmd.Flags().
		StringP("manifest", "m", "", "TOML or YAML manifest listing speaker/file pairs")
}

// one (speaker, file) input pair
type trackSource struct {
	Speaker string
	Path    string
}

// pairs speakers with files positionally. the counts must match and
// are checked before any file is touched
func pairSources(files, speakers []string) ([]trackSource, error) {
	if len(speakers) != len(files) {
		return nil, errors.New(
			"differing number of speakers and files. every file needs one speaker defined",
		)
	}

	sources := make([]trackSource, len(files))
	for i := range files {
		sources[i] = trackSource{Speaker: speakers[i], Path: files[i]}
	}
	return sources, nil
}

// reads and parses one track, annotating any failure with the path
func loadTrack(path string) (*webvtt.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("while parsing %s: %w", path, err)
	}
	track, err := webvtt.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("while parsing %s: %w", path, err)
	}
	return track, nil
}

// folds every source into one track in input order. the first failure
// aborts the whole run. also returns the paths of files that were not
// already ordered by start time
func mergeSources(sources []trackSource) (*webvtt.Track, []string, error) {
	merged := &webvtt.Track{}
	var unsorted []string

	for _, src := range sources {
		track, err := loadTrack(src.Path)
		if err != nil {
			return nil, nil, err
		}
		if !track.IsSorted() {
			unsorted = append(unsorted, src.Path)
		}
		track.Sort()
		track.SetSpeakerForAll(src.Speaker)
		merged.MergeWith(track)
	}

	return merged, unsorted, nil
}

func runMerge(cmd *cobra.Command, args []string) error {
	speakers, _ := cmd.Flags().GetStringSlice("speakers")
	manifestPath, _ := cmd.Flags().GetString("manifest")
	outputPath, _ := cmd.Flags().GetString("output")

	var sources []trackSource
	if manifestPath != "" {
		if len(args) > 0 || len(speakers) > 0 {
			return errors.New(
				"--manifest cannot be combined with file arguments or --speakers",
			)
		}
		man, err := manifest.Load(manifestPath)
		if err != nil {
			return err
		}
		for _, entry := range man.Tracks {
			sources = append(sources, trackSource{Speaker: entry.Speaker, Path: entry.File})
		}
	} else {
		if len(args) == 0 {
			return errors.New("at least one input file is required (or use --manifest)")
		}
		var err error
		sources, err = pairSources(args, speakers)
		if err != nil {
			return err
		}
	}

	logger.Infow("Merging tracks",
		"files", len(sources),
	)

	merged, unsorted, err := mergeSources(sources)
	if err != nil {
		return err
	}
	for _, path := range unsorted {
		logger.Warnw("Input not ordered by start time",
			"file", path,
		)
	}

	document := merged.String()
	if outputPath == "" {
		fmt.Print(document)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Infow("Merged track written",
		"output", outputPath,
		"cues", len(merged.Cues),
	)
	fmt.Printf("Merged %d tracks into %s (%d cues)\n", len(sources), outputPath, len(merged.Cues))

	return nil
}
