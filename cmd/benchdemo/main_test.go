package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"MicroBench/logutil"
)

func TestShowDiagnosticsCoversAllSeverities(t *testing.T) {
	var out, errBuf bytes.Buffer
	logutil.SetWriters(&out, &errBuf)
	defer logutil.SetWriters(os.Stdout, os.Stderr)

	showDiagnostics()

	if !strings.Contains(out.String(), "informational message with data: 42") {
		t.Fatalf("stdout missing info message: %q", out.String())
	}
	for _, want := range []string{"potential issue: 3.14", "simulated failure: division by zero"} {
		if !strings.Contains(errBuf.String(), want) {
			t.Fatalf("stderr missing %q: %q", want, errBuf.String())
		}
	}
}
