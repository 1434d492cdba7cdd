package structure

import (
	"testing"

	"shelfdb/pkg/common"
)

func TestBloomNoFalseNegatives(t *testing.T) {
	bf := NewBloomFilter(1000, 0.01)
	for i := 0; i < 1000; i++ {
		bf.Add(common.NewBook("title", "author", i).Fingerprint())
	}
	for i := 0; i < 1000; i++ {
		if !bf.Contains(common.NewBook("title", "author", i).Fingerprint()) {
			t.Fatalf("false negative for year %d", i)
		}
	}
}

func TestBloomFalsePositiveRate(t *testing.T) {
	bf := NewBloomFilter(1000, 0.01)
	for i := 0; i < 1000; i++ {
		bf.Add(common.NewBook("in", "set", i).Fingerprint())
	}
	fp := 0
	for i := 0; i < 10000; i++ {
		if bf.Contains(common.NewBook("not", "present", i).Fingerprint()) {
			fp++
		}
	}
	// generous bound; the configured target is 1%
	if fp > 500 {
		t.Fatalf("false positive rate too high: %d/10000", fp)
	}
}

func TestBloomDegenerateParams(t *testing.T) {
	bf := NewBloomFilter(0, 5)
	bf.Add(1)
	if !bf.Contains(1) {
		t.Fatalf("expected contains after add")
	}
	stats := bf.Stats()
	if stats["bloom_count"] != uint(1) {
		t.Fatalf("bloom_count: got %v", stats["bloom_count"])
	}
}
