package structure

import (
	"math"
)

// BloomFilter 记录所有曾经加入过的书的指纹。不支持删除。
type BloomFilter struct {
	bitset []bool
	k      uint
	m      uint
	count  uint
}

func NewBloomFilter(n uint, p float64) *BloomFilter {
	// 理论最佳公式
	// m = - (n * ln(p)) / (ln(2)^2)
	// k = (m / n) * ln(2)
	if n == 0 {
		n = 1
	}
	if p <= 0 || p >= 1 {
		p = 0.01
	}

	m := uint(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	k := uint(math.Ceil((float64(m) / float64(n)) * math.Ln2))
	if k == 0 {
		k = 1
	}

	return &BloomFilter{
		bitset: make([]bool, m),
		k:      k,
		m:      m,
	}
}

func (bf *BloomFilter) Add(fingerprint uint64) {
	h1 := hash1(fingerprint)
	h2 := hash2(fingerprint)

	for i := uint(0); i < bf.k; i++ {
		pos := (h1 + uint32(i)*h2) % uint32(bf.m)
		bf.bitset[pos] = true
	}
	bf.count++
}

// Contains never returns false for a fingerprint that was added.
func (bf *BloomFilter) Contains(fingerprint uint64) bool {
	h1 := hash1(fingerprint)
	h2 := hash2(fingerprint)

	for i := uint(0); i < bf.k; i++ {
		pos := (h1 + uint32(i)*h2) % uint32(bf.m)
		if !bf.bitset[pos] {
			return false
		}
	}
	return true
}

func hash1(n uint64) uint32 {
	return uint32(n)
}

func hash2(n uint64) uint32 {
	// odd step so the probe sequence does not collapse onto one bit
	return uint32(n>>32) | 1
}

func (bf *BloomFilter) Stats() map[string]interface{} {
	return map[string]interface{}{
		"bloom_bits_size": bf.m,
		"bloom_hashes":    bf.k,
		"bloom_count":     bf.count,
	}
}
