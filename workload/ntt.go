package workload

import "github.com/tuneinsight/lattigo/v4/ring"

// nttModulus is NTT-friendly for every degree used here: q ≡ 1 mod 2n
// for n up to 1024.
const nttModulus = 1038337

// NTTWorkload owns a negacyclic ring and one polynomial reused across
// round trips, so the kernel allocates nothing per call.
type NTTWorkload struct {
	r *ring.Ring
	p *ring.Poly
}

// NewNTTWorkload builds a degree-n workload; n must be a power of two no
// larger than 1024.
func NewNTTWorkload(n int) (*NTTWorkload, error) {
	r, err := ring.NewRing(n, []uint64{nttModulus})
	if err != nil {
		return nil, err
	}
	p := r.NewPoly()
	for i := range p.Coeffs[0] {
		p.Coeffs[0][i] = uint64(i) % r.Modulus[0]
	}
	return &NTTWorkload{r: r, p: p}, nil
}

// RoundTrip runs one forward and one inverse NTT in place, restoring the
// coefficient representation exactly.
func (w *NTTWorkload) RoundTrip() {
	w.r.NTT(w.p, w.p)
	w.r.InvNTT(w.p, w.p)
}

// Coeffs exposes the first-limb coefficients, for tests.
func (w *NTTWorkload) Coeffs() []uint64 {
	return w.p.Coeffs[0]
}
