package tss

// GF(2^8) arithmetic over the irreducible polynomial x^8+x^4+x^3+x+1
// (0x11b), the reduction polynomial fixed by the TSS wire format. Multiply
// and divide go through log/antilog tables indexed by powers of the
// generator 3, built once at package init and read-only afterwards.
//
// Table lookups are not constant time; see the package documentation.

var (
	gfExp [510]byte // doubled so mul and div can skip the mod 255
	gfLog [256]byte
)

func init() {
	x := byte(1)
	for i := 0; i < 255; i++ {
		gfExp[i] = x
		gfExp[i+255] = x
		gfLog[x] = byte(i)
		// next power of the generator: x*3 = x*2 + x
		y := x << 1
		if x&0x80 != 0 {
			y ^= 0x1b
		}
		x ^= y
	}
}

// gfAdd adds two field elements. Addition and subtraction coincide in
// GF(2^8), both being XOR.
func gfAdd(a, b byte) byte { return a ^ b }

func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[int(gfLog[a])+int(gfLog[b])]
}

// gfDiv returns a/b. Division by zero panics: the only divisors in this
// package are sums of distinct nonzero share indices, which are never zero.
func gfDiv(a, b byte) byte {
	if b == 0 {
		panic("tss: division by zero in GF(2^8)")
	}
	if a == 0 {
		return 0
	}
	return gfExp[int(gfLog[a])+255-int(gfLog[b])]
}
