package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mgpai22/sangam/internal/webvtt"
)

func statsSpan(startMs, endMs int) webvtt.Timerange {
	return webvtt.Timerange{
		Start: webvtt.Timestamp(time.Duration(startMs) * time.Millisecond),
		End:   webvtt.Timestamp(time.Duration(endMs) * time.Millisecond),
	}
}

func TestBuildStats(t *testing.T) {
	track := &webvtt.Track{Cues: []webvtt.Cue{
		{Range: statsSpan(2000, 3000), Text: "b"},
		{Range: statsSpan(1000, 5000), Text: "a"},
		{Range: statsSpan(4000, 4500), Text: "c"},
	}}

	stats := buildStats("mixed.vtt", track)
	if stats.Path != "mixed.vtt" {
		t.Errorf("path = %q", stats.Path)
	}
	if stats.Cues != 3 {
		t.Errorf("cues = %d, want 3", stats.Cues)
	}
	if stats.Start.Duration() != 1*time.Second {
		t.Errorf("start = %v, want 1s", stats.Start.Duration())
	}
	if stats.End.Duration() != 5*time.Second {
		t.Errorf("end = %v, want 5s", stats.End.Duration())
	}
	if stats.Sorted {
		t.Error("expected Sorted to be false")
	}
}

func TestBuildStatsEmptyTrack(t *testing.T) {
	stats := buildStats("empty.vtt", &webvtt.Track{})
	if stats.Cues != 0 {
		t.Errorf("cues = %d, want 0", stats.Cues)
	}
	if !stats.Sorted {
		t.Error("expected empty track to count as sorted")
	}
}

func TestRenderStatsTable(t *testing.T) {
	stats := []trackStats{
		{
			Path:   "alice.vtt",
			Cues:   12,
			Start:  webvtt.Timestamp(1 * time.Second),
			End:    webvtt.Timestamp(90 * time.Second),
			Sorted: true,
		},
		{
			Path:   "bob.vtt",
			Cues:   7,
			Start:  webvtt.Timestamp(2 * time.Second),
			End:    webvtt.Timestamp(80 * time.Second),
			Sorted: false,
		},
	}

	out := renderStatsTable(stats, false)

	for _, want := range []string{
		"FILE", "CUES", "START", "END", "SORTED",
		"alice.vtt", "bob.vtt",
		"00:00:01.000", "00:01:30.000",
		"yes", "no",
		"TOTAL", "19",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected color codes without colorize:\n%s", out)
	}
}

func TestRenderStatsTableEmptyBounds(t *testing.T) {
	out := renderStatsTable([]trackStats{{Path: "empty.vtt", Sorted: true}}, false)
	if !strings.Contains(out, "-") {
		t.Errorf("expected placeholder bounds for empty track:\n%s", out)
	}
}

func TestRenderStatsTableColorized(t *testing.T) {
	stats := []trackStats{
		{Path: "a.vtt", Cues: 1, Sorted: true},
		{Path: "b.vtt", Cues: 1, Sorted: false},
	}

	out := renderStatsTable(stats, true)
	if !strings.Contains(out, ansiGreen+"yes"+ansiReset) {
		t.Errorf("expected green yes in colorized output:\n%s", out)
	}
	if !strings.Contains(out, ansiRed+"no"+ansiReset) {
		t.Errorf("expected red no in colorized output:\n%s", out)
	}
}

func TestShouldColorize(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Error("expected false for a non-file writer")
	}
}
