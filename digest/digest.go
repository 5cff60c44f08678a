package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"io"

	"github.com/cloudflare/circl/xof"
	"golang.org/x/crypto/sha3"
)

// Size is the SHA3-256 digest length in bytes.
const Size = 32

// Sum returns the SHA3-256 digest of the UTF-8 bytes of name.
func Sum(name string) [Size]byte {
	return sha3.Sum256([]byte(name))
}

// Hex returns the SHA3-256 digest of name rendered as 64 lowercase
// hexadecimal characters.
func Hex(name string) string {
	d := Sum(name)
	return hex.EncodeToString(d[:])
}

// Algorithm names a supported digest algorithm.
type Algorithm string

const (
	SHA3256  Algorithm = "sha3-256"
	SHA256   Algorithm = "sha256"
	SHA512   Algorithm = "sha512"
	SHAKE256 Algorithm = "shake256"
)

// Default is the algorithm used when none is specified.
const Default = SHA3256

// SumWith returns the digest of data under alg.
//
// For SHAKE256 the output is truncated to Size bytes; use XOF for a
// caller-chosen length. Unsupported algorithms yield a structured error
// (Kind=Algorithm), never a panic.
func SumWith(alg Algorithm, data []byte) ([]byte, error) {
	switch alg {
	case SHA3256:
		s := sha3.Sum256(data)
		return s[:], nil
	case SHA256:
		s := sha256.Sum256(data)
		return s[:], nil
	case SHA512:
		s := sha512.Sum512(data)
		return s[:], nil
	case SHAKE256:
		return XOF(data, Size)
	default:
		return nil, newError(KindAlgorithm, "NH-ALG-001", "unsupported algorithm: "+string(alg))
	}
}

// HexWith returns the digest of data under alg as lowercase hex.
func HexWith(alg Algorithm, data []byte) (string, error) {
	sum, err := SumWith(alg, data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// XOF returns length bytes of SHAKE256 output over data.
//
// SHAKE256 is an extended-output function: output at a shorter length is a
// prefix of output at a longer length.
func XOF(data []byte, length int) ([]byte, error) {
	if length <= 0 {
		return nil, newError(KindLength, "NH-LEN-001", "xof output length must be positive")
	}
	x := xof.SHAKE256.New()
	if _, err := x.Write(data); err != nil {
		// SHAKE absorption cannot fail; kept for the io.Writer contract.
		return nil, wrapError(KindInternal, "NH-INT-001", "xof absorb", err)
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(x, out); err != nil {
		return nil, wrapError(KindInternal, "NH-INT-002", "xof squeeze", err)
	}
	return out, nil
}
