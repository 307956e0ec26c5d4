package codegen

import "unikit/internal/token"

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IDGen hands out short property keys: a … z, A … Z, aa, ab, …
// Keys never repeat for the lifetime of a generator and never spell a
// reserved word.
type IDGen struct {
	n uint64
}

// Next returns the next unused key.
func (g *IDGen) Next() string {
	for {
		g.n++
		id := encodeID(g.n)
		if !token.IsReserved(id) {
			return id
		}
	}
}

// encodeID - биективная запись n >= 1 в base-52.
func encodeID(n uint64) string {
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = idAlphabet[n%uint64(len(idAlphabet))]
		n /= uint64(len(idAlphabet))
	}
	return string(buf[i:])
}
