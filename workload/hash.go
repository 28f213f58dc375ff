package workload

import "golang.org/x/crypto/sha3"

// Shake256Sum absorbs data into SHAKE256 and squeezes outLen bytes.
func Shake256Sum(data []byte, outLen int) []byte {
	h := sha3.NewShake256()
	h.Write(data)
	out := make([]byte, outLen)
	h.Read(out)
	return out
}
