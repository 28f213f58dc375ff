package workload

import "testing"

func TestNTTRoundTripRestoresCoeffs(t *testing.T) {
	w, err := NewNTTWorkload(1024)
	if err != nil {
		t.Fatalf("NewNTTWorkload failed: %v", err)
	}
	before := append([]uint64(nil), w.Coeffs()...)
	w.RoundTrip()
	for i, c := range w.Coeffs() {
		if c != before[i] {
			t.Fatalf("round-trip mismatch at %d: got %d want %d", i, c, before[i])
		}
	}
}

func TestNewNTTWorkloadRejectsBadDegree(t *testing.T) {
	if _, err := NewNTTWorkload(3); err == nil {
		t.Fatal("expected error for non-power-of-two degree")
	}
}

func BenchmarkNTTRoundTrip(b *testing.B) {
	w, err := NewNTTWorkload(512)
	if err != nil {
		b.Fatalf("NewNTTWorkload failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.RoundTrip()
	}
}
