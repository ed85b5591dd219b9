package node

import (
	"encoding/binary"
	"hash/maphash"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

var seed = maphash.MakeSeed()

// hash classes: numbers of a family share one so that Hash agrees with Equal
const (
	hashIntegral = byte(0x80 + iota)
	hashDecimal
)

// Hash returns a 64-bit hash of n consistent with Equal. The hash of a
// container changes when it is mutated.
func Hash(n Node) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	writeHash(&h, n)
	return h.Sum64()
}

func writeUint64(h *maphash.Hash, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

func writeHash(h *maphash.Hash, n Node) {
	if n == nil {
		return
	}
	k := n.Kind()
	switch {
	case k.IsIntegral():
		h.WriteByte(hashIntegral)
		i, b := integralValue(n)
		if b == nil {
			writeUint64(h, uint64(i))
			return
		}
		h.WriteByte(byte(b.Sign() + 1))
		h.Write(new(big.Int).Abs(b).Bytes())
		return
	case k.IsDecimal():
		h.WriteByte(hashDecimal)
		class, d := decimalValue(n)
		h.WriteByte(byte(class))
		if class == decFinite {
			h.WriteString(canonicalDecimal(d))
		}
		return
	}
	h.WriteByte(byte(k))

	switch x := n.(type) {
	case *Bool:
		if x.v {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case *Text:
		h.WriteString(x.v)
	case *Binary:
		h.Write(x.v)
	case *Time:
		writeUint64(h, uint64(x.v.Unix()))
		writeUint64(h, uint64(x.v.Nanosecond()))
	case *Map:
		writeUint64(h, unorderedHash(&x.es))
	case *OrderedMap:
		writeUint64(h, unorderedHash(&x.es))
	case *Set:
		writeUint64(h, unorderedHash(&x.es))
	case *Pairs:
		for _, e := range x.es.list {
			writeUint64(h, Hash(e.key))
			writeUint64(h, Hash(e.val))
		}
	case *Sequence:
		for _, v := range x.list {
			writeUint64(h, Hash(v))
		}
	}
}

// unorderedHash combines the entry hashes by summing them.
func unorderedHash(es *entries) uint64 {
	var sum uint64
	for _, e := range es.list {
		var h maphash.Hash
		h.SetSeed(seed)
		writeUint64(&h, Hash(e.key))
		writeUint64(&h, Hash(e.val))
		sum += h.Sum64()
	}
	return sum
}

// canonicalDecimal renders d so that equal values render the same.
func canonicalDecimal(d *apd.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	r, _ := new(apd.Decimal).Reduce(d)
	return r.String()
}
