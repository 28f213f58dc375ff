// Command benchdemo exercises the recorder end to end: it times a set of
// compute kernels, prints every report mode, shows the FFT throughput
// estimate and the SI scaling table, and can render an HTML chart.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/fatih/color"

	"MicroBench/bench"
	"MicroBench/chart"
	"MicroBench/logutil"
	"MicroBench/scale"
	"MicroBench/workload"
)

const fftSize = 1024

var (
	headerColor  = color.New(color.FgHiCyan)
	titleColor   = color.New(color.FgHiYellow)
	sectionColor = color.New(color.FgHiGreen)
	noteColor    = color.New(color.FgYellow)
)

func main() {
	jsonOnly := flag.Bool("json-only", false, "print only the sentinel-framed JSON payload")
	htmlChart := flag.Bool("chart", false, "also render an HTML bar chart to stdout")
	flag.Parse()

	s := bench.NewSession()
	runKernels(s)

	if *jsonOnly {
		s.PrintJSON()
		return
	}

	banner("BENCHMARK RESULTS")

	section("Output Formats")
	noteColor.Println("\n--- Raw Timing Data ---")
	s.PrintRaw()
	noteColor.Println("\n--- JSON Format ---")
	s.PrintJSON()
	noteColor.Println("\n--- Ranked Visualization ---")
	s.PrintRanked()

	section("FFT Throughput")
	s.FFTReport(fftMean(s), fftSize)

	section("Diagnostics")
	showDiagnostics()

	section("SI Scaling Examples")
	showScaling()

	if *htmlChart {
		if err := chart.RenderRanked(s, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "chart render error: %v\n", err)
			os.Exit(1)
		}
	}
}

// runKernels times a mix of synthetic loops and real transform/hash
// kernels, including repeated runs of the same operation under distinct
// labels.
func runKernels(s *bench.Session) {
	logutil.Infof("timing kernels, FFT size %d", fftSize)

	s.Start()
	fastLoop(1000)
	s.Stop("fast_operation")

	s.Start()
	sinCosLoop(50000)
	s.Stop("medium_operation")

	s.Start()
	time.Sleep(5 * time.Millisecond)
	sqrtLoop(100000)
	s.Stop("slow_operation")

	s.Start()
	touchPass(1_000_000)
	s.Stop("memory_intensive")

	for i := 1; i <= 3; i++ {
		s.Start()
		fastLoop(1000)
		s.Stop(fmt.Sprintf("fast_op_run_%d", i))
	}

	in := make([]complex128, fftSize)
	for i := range in {
		in[i] = complex(math.Sin(float64(i)), 0)
	}
	s.Start()
	workload.FFT(in)
	s.Stop("fft_1024")

	ntt, err := workload.NewNTTWorkload(512)
	if err != nil {
		logutil.Errorf("NTT workload setup failed: %v", err)
	} else {
		s.Start()
		for i := 0; i < 100; i++ {
			ntt.RoundTrip()
		}
		s.Stop("ntt_roundtrip_100x")
	}

	data := make([]byte, 1<<20)
	s.Start()
	workload.Shake256Sum(data, 64)
	s.Stop("shake256_1MiB")
}

// fftMean returns the recorded duration for the FFT kernel, or 0 when it
// was dropped (FFTReport treats 0 as "nothing to say").
func fftMean(s *bench.Session) float64 {
	for _, e := range s.Entries() {
		if e.Label == "fft_1024" {
			return float64(e.TimeUS)
		}
	}
	logutil.Warnf("no fft_1024 entry recorded")
	return 0
}

// showDiagnostics emits one message at each severity, demonstrating the
// stream split and the call-site annotation.
func showDiagnostics() {
	logutil.Infof("informational message with data: %d", 42)
	logutil.Warnf("potential issue: %.2f", 3.14159)
	logutil.Errorf("simulated failure: %s", "division by zero")
}

func showScaling() {
	samples := []struct {
		label string
		value float64
	}{
		{"Very fast operation", 0.000000123},
		{"Fast operation", 0.000456},
		{"Medium operation", 0.123},
		{"Slow operation", 1.5},
		{"Very slow operation", 1500.0},
		{"Extremely slow operation", 1500000.0},
		{"Geological time operation", 1.5e9},
		{"Cosmological time operation", 1.5e12},
	}
	for _, sm := range samples {
		fmt.Printf("  %-28s: %s\n", sm.label, scale.Format(sm.value, "s"))
	}
}

func banner(title string) {
	rule := "═══════════════════════════════════════════════════════════════"
	fmt.Println()
	headerColor.Println(rule)
	titleColor.Printf("%32s\n", title)
	headerColor.Println(rule)
}

func section(name string) {
	sectionColor.Printf("\n[%s]\n", name)
}

func fastLoop(n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += i * i
	}
	return sum
}

func sinCosLoop(n int) float64 {
	var r float64
	for i := 0; i < n; i++ {
		r += math.Sin(float64(i)) * math.Cos(float64(i))
	}
	return r
}

func sqrtLoop(n int) float64 {
	var r float64
	for i := 0; i < n; i++ {
		r += math.Sqrt(float64(i)) / (float64(i) + 1.0)
	}
	return r
}

func touchPass(n int) int {
	data := make([]int, n)
	for i := range data {
		data[i] = i % 1000
	}
	for i := 0; i+1 < n; i += 100 {
		if data[i] > data[i+1] {
			data[i], data[i+1] = data[i+1], data[i]
		}
	}
	return data[0]
}
