package bench

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"

	"MicroBench/scale"
)

var reportSeparator = "\n" + strings.Repeat("▰", 64) + "\n"

var (
	separatorColor = color.New(color.FgHiBlue)
	captionColor   = color.New(color.FgHiCyan)
	elapsedColor   = color.New(color.FgHiYellow)
	rateColor      = color.New(color.FgHiGreen)
)

// FFTReport prints the mean per-transform time and the estimated
// floating-point rate for one radix-2 FFT of the given size, using the
// 5·N·log2(N) cost model (https://www.fftw.org/speed/). Both values are
// SI-scaled and wrapped in decorative separators. Non-positive durations
// produce no output.
func (s *Session) FFTReport(meanUS float64, size uint) {
	if meanUS <= 0 {
		return
	}

	points := float64(size)
	secs := meanUS * scale.Table[scale.Micro].Divisor
	flops := 5.0 * points * math.Log2(points) / secs

	separatorColor.Fprint(s.out, reportSeparator)
	fmt.Fprintf(s.out, "⏱️  %s  : %s (%.3f µs)\n",
		captionColor.Sprint("FFT per frame"),
		elapsedColor.Sprint(scale.Format(secs, "s")), meanUS)
	fmt.Fprintf(s.out, "⚡  %s  : %s (%.3f FLOP/s)\n",
		captionColor.Sprint("Speed         "),
		rateColor.Sprint(scale.Format(flops, "FLOP/s")), flops)
	separatorColor.Fprint(s.out, reportSeparator)
	fmt.Fprint(s.out, "\n\n")
}
