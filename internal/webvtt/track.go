package webvtt

import (
	"fmt"
	"sort"
	"strings"
)

// one timed caption line with an optional speaker label. an empty
// Speaker renders without a voice span
type Cue struct {
	Range   Timerange
	Speaker string
	Text    string
}

// the leading blank line separates cue blocks in the rendered document
func (c Cue) String() string {
	if c.Speaker != "" {
		return fmt.Sprintf("\n%s\n<v %s>%s\n", c.Range, c.Speaker, c.Text)
	}
	return fmt.Sprintf("\n%s\n%s\n", c.Range, c.Text)
}

// ordered sequence of cues from one document
type Track struct {
	Cues []Cue
}

// parses the restricted WebVTT subset: a literal "WEBVTT" prefix
// (a string-prefix check, the header need not be a whole line), then
// blocks separated by blank lines, each block a timing line followed
// by text lines. every text line of a block becomes its own Cue
// carrying the block's Timerange; multi-line blocks are split, never
// joined. the first malformed line aborts the whole document
func Parse(document string) (*Track, error) {
	if !strings.HasPrefix(document, "WEBVTT") {
		found, _, _ := strings.Cut(document, "\n")
		found = strings.TrimSuffix(found, "\r")
		return nil, &ParseError{Expected: "WEBVTT", Found: found}
	}

	track := &Track{}
	var pending *Timerange
	for _, line := range strings.Split(document[len("WEBVTT"):], "\n") {
		line = strings.TrimSuffix(line, "\r")

		// a blank line closes the current block
		if strings.TrimSpace(line) == "" {
			pending = nil
			continue
		}

		if pending == nil {
			r, err := ParseTimerange(line)
			if err != nil {
				return nil, err
			}
			pending = &r
			continue
		}
		track.Cues = append(track.Cues, Cue{Range: *pending, Text: line})
	}

	return track, nil
}

func (t *Track) String() string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n")
	for _, cue := range t.Cues {
		sb.WriteString(cue.String())
	}
	return sb.String()
}

// stable sort by cue start time only; cues with equal starts keep
// their relative order
func (t *Track) Sort() {
	sort.SliceStable(t.Cues, func(i, j int) bool {
		return t.Cues[i].Range.Start < t.Cues[j].Range.Start
	})
}

// reports whether the cues are already in non-decreasing start order
func (t *Track) IsSorted() bool {
	return sort.SliceIsSorted(t.Cues, func(i, j int) bool {
		return t.Cues[i].Range.Start < t.Cues[j].Range.Start
	})
}

// overwrites every cue's speaker, discarding any prior value
func (t *Track) SetSpeakerForAll(speaker string) {
	for i := range t.Cues {
		t.Cues[i].Speaker = speaker
	}
}

// appends other's cues and re-sorts; on equal start times existing
// cues come before other's
func (t *Track) MergeWith(other *Track) {
	t.Cues = append(t.Cues, other.Cues...)
	t.Sort()
}
