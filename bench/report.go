package bench

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"MicroBench/scale"
)

const tableBorder = "---------------------------------------------------------"

var (
	borderColor = color.New(color.FgHiCyan)
	barColor    = color.New(color.FgHiCyan)

	hot1     = color.New(color.FgHiRed)
	hot2     = color.New(color.FgRed)
	hot3     = color.New(color.FgMagenta)
	warm1    = color.New(color.FgHiYellow)
	warm2    = color.New(color.FgYellow)
	cool1    = color.New(color.FgHiGreen)
	cool2    = color.New(color.FgGreen)
	baseline = color.New(color.FgBlue)
)

// gradientColor buckets a 0–100 share of the maximum into one of eight
// colors, hottest first.
func gradientColor(share float64) *color.Color {
	switch {
	case share >= 80:
		return hot1
	case share >= 60:
		return hot2
	case share >= 40:
		return hot3
	case share >= 25:
		return warm1
	case share >= 15:
		return warm2
	case share >= 5:
		return cool1
	case share > 0.1:
		return cool2
	default:
		return baseline
	}
}

// PrintRaw writes one "label:microseconds" line per entry in storage
// order. No header, no totals.
func (s *Session) PrintRaw() {
	for _, e := range s.Entries() {
		fmt.Fprintf(s.out, "%s:%d\n", e.Label, e.TimeUS)
	}
}

// PrintJSON writes the recorded entries as a JSON-like object framed by
// the literal sentinels ">>>{" and "}<<<". The framing is a grep anchor
// for downstream tooling and is kept verbatim; the payload is not valid
// JSON on purpose.
func (s *Session) PrintJSON() {
	fmt.Fprintln(s.out, ">>>{")
	for i, e := range s.Entries() {
		comma := ","
		if i == s.n-1 {
			comma = ""
		}
		fmt.Fprintf(s.out, "  \"%s\": {\"time_us\": %d, \"percentage\": %.2f}%s\n",
			e.Label, e.TimeUS, s.percentOfTotal(e.TimeUS), comma)
	}
	fmt.Fprintln(s.out, "}<<<")
}

// percentOfTotal guards the zero-total case: an empty or all-zero store
// renders every share as 0.
func (s *Session) percentOfTotal(us int64) float64 {
	if s.totalUS == 0 {
		return 0
	}
	return float64(us) * 100.0 / float64(s.totalUS)
}

// PrintRanked sorts the entries descending by duration and writes a
// bordered table with one data row and one bar row per entry. The sort is
// stable and in place, so repeated calls print identical output.
func (s *Session) PrintRanked() {
	if s.n == 0 {
		fmt.Fprintln(s.out, "\nNo benchmark data available.")
		return
	}

	entries := s.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TimeUS > entries[j].TimeUS
	})

	borderColor.Fprintln(s.out, tableBorder)
	borderColor.Fprintf(s.out, "| %-20s | %-12s | %-7s |\n", "Function", "Exec Time", "% of total runtime")
	borderColor.Fprintln(s.out, tableBorder)

	maxUS := entries[0].TimeUS
	for _, e := range entries {
		pct := s.percentOfTotal(e.TimeUS)
		timeStr := scale.Format(float64(e.TimeUS)*scale.Table[scale.Micro].Divisor, "s")

		share := 0.0
		if maxUS > 0 {
			share = float64(e.TimeUS) / float64(maxUS) * 100.0
		}
		gradientColor(share).Fprintf(s.out, "| %-20s | %12s | %6.4f%% |\n", e.Label, timeStr, pct)

		filled := int(BarLength * pct / 100.0)
		if filled < 0 {
			filled = 0
		} else if filled > BarLength {
			filled = BarLength
		}
		bar := strings.Repeat("▰", filled) + strings.Repeat(" ", BarLength-filled)
		barColor.Fprintf(s.out, "[%s]\n", bar)
	}

	borderColor.Fprintln(s.out, tableBorder)
}
