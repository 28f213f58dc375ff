package logutil

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func redirect(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errBuf bytes.Buffer
	SetWriters(&out, &errBuf)
	t.Cleanup(func() { SetWriters(os.Stdout, os.Stderr) })
	return &out, &errBuf
}

func TestSeverityStreams(t *testing.T) {
	out, errBuf := redirect(t)

	Infof("hello %d", 42)
	Warnf("watch out")
	Errorf("boom")

	if !strings.Contains(out.String(), "hello 42") {
		t.Fatalf("stdout missing info message: %q", out.String())
	}
	if strings.Contains(out.String(), "boom") || strings.Contains(out.String(), "watch out") {
		t.Fatalf("warn/error leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errBuf.String(), "watch out") {
		t.Fatalf("stderr missing warning: %q", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "boom") {
		t.Fatalf("stderr missing error: %q", errBuf.String())
	}
}

func TestLinesStartAtSeverityTag(t *testing.T) {
	out, errBuf := redirect(t)

	Infof("first")
	Errorf("second")

	for _, got := range []string{out.String(), errBuf.String()} {
		if strings.Contains(got, "<nil>") {
			t.Fatalf("missing time field rendered as <nil>: %q", got)
		}
	}
	if !strings.Contains(out.String(), "INF") {
		t.Fatalf("stdout missing severity tag: %q", out.String())
	}
	if !strings.Contains(errBuf.String(), "ERR") {
		t.Fatalf("stderr missing severity tag: %q", errBuf.String())
	}
}

func TestCallSiteMetadata(t *testing.T) {
	out, _ := redirect(t)

	Infof("locate me")

	got := out.String()
	for _, want := range []string{"locate me", "logutil_test.go", "line=", "TestCallSiteMetadata"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output %q missing %q", got, want)
		}
	}
}
