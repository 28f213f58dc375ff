// Package chart renders a session's timings as an interactive HTML bar
// chart. Unlike the terminal ranked view it sorts a copy, leaving the
// session's storage order untouched.
package chart

import (
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"MicroBench/bench"
)

// RenderRanked writes an HTML page with one bar per recorded section,
// longest first, to w.
func RenderRanked(s *bench.Session, w io.Writer) error {
	entries := append([]bench.Entry(nil), s.Entries()...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TimeUS > entries[j].TimeUS
	})

	labels := make([]string, 0, len(entries))
	items := make([]opts.BarData, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Label)
		items = append(items, opts.BarData{Value: e.TimeUS})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Benchmark timings",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Section",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Time (µs)",
		}),
	)
	bar.SetXAxis(labels).AddSeries("time_us", items)

	page := components.NewPage().SetPageTitle("Benchmark timings")
	page.AddCharts(bar)
	return page.Render(w)
}
