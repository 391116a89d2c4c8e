package webvtt

import (
	"fmt"
	"strings"
)

// start/end pair of one cue timing line
type Timerange struct {
	Start Timestamp
	End   Timestamp
}

// parses a timing line "<start> --> <end>", split on single spaces.
// anything after the end timestamp is ignored
func ParseTimerange(line string) (Timerange, error) {
	parts := strings.Split(line, " ")

	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return Timerange{}, err
	}

	sep := ""
	if len(parts) > 1 {
		sep = parts[1]
	}
	if sep != "-->" {
		return Timerange{}, &ParseError{Expected: "-->", Found: sep}
	}

	if len(parts) < 3 {
		return Timerange{}, &ParseError{Expected: "a end time", Found: ""}
	}
	end, err := ParseTimestamp(parts[2])
	if err != nil {
		return Timerange{}, err
	}

	return Timerange{Start: start, End: end}, nil
}

func (r Timerange) String() string {
	return fmt.Sprintf("%s --> %s", r.Start, r.End)
}
