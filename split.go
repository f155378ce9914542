package tss

import (
	"crypto/rand"
	"fmt"
)

// gfEval evaluates the polynomial with the given coefficients (constant
// term first) at x, using Horner's rule in GF(256).
func gfEval(coefs []byte, x byte) byte {
	var y byte
	for i := len(coefs) - 1; i >= 0; i-- {
		y = gfAdd(gfMul(y, x), coefs[i])
	}
	return y
}

// splitBytes produces count payloads of len(secret) bytes each, payload j
// holding the evaluations at x=j+1 of per-byte random polynomials whose
// constant terms are the secret bytes. All coefficient randomness comes
// from crypto/rand in a single bulk read; a failing source aborts the
// split, it is never substituted with a weaker one.
func splitBytes(secret []byte, threshold, count int) ([][]byte, error) {
	random := make([]byte, len(secret)*(threshold-1))
	if _, err := rand.Read(random); err != nil {
		return nil, fmt.Errorf("reading random coefficients: %w", err)
	}

	payloads := make([][]byte, count)
	for j := range payloads {
		payloads[j] = make([]byte, len(secret))
	}

	coefs := make([]byte, threshold)
	for i, b := range secret {
		coefs[0] = b
		copy(coefs[1:], random[i*(threshold-1):])
		for j := range payloads {
			payloads[j][i] = gfEval(coefs, byte(j+1))
		}
	}
	return payloads, nil
}
