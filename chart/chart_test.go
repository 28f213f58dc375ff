package chart

import (
	"bytes"
	"strings"
	"testing"

	"MicroBench/bench"
)

func TestRenderRanked(t *testing.T) {
	s := bench.NewSession()
	s.Insert("alpha", 1000)
	s.Insert("beta", 3000)

	var buf bytes.Buffer
	if err := RenderRanked(s, &buf); err != nil {
		t.Fatalf("RenderRanked failed: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"alpha", "beta", "echarts", "Benchmark timings"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered page missing %q", want)
		}
	}

	// The session's storage order must survive rendering.
	if got := s.Entries()[0].Label; got != "alpha" {
		t.Fatalf("render reordered session entries: first is %q", got)
	}
}

func TestRenderRankedEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRanked(bench.NewSession(), &buf); err != nil {
		t.Fatalf("RenderRanked on empty session failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty session should still render a page")
	}
}
