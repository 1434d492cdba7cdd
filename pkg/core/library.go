package core

import (
	"errors"
	"fmt"
	"log"

	"shelfdb/pkg/config"
)

const (
	StrategyIndexed = "indexed"
	StrategyScan    = "scan"

	DuplicatesMultiset = "multiset"
	DuplicatesSet      = "set"
)

var (
	ErrUnknownStrategy        = errors.New("unknown library strategy")
	ErrUnknownDuplicatePolicy = errors.New("unknown duplicate policy")
)

// NewLibrary builds an empty library using the strategy and duplicate policy
// named in cfg. Under "multiset" value-equal books coexist and RemoveBook
// drops the earliest one; under "set" re-adding a stored book is a no-op.
func NewLibrary(cfg config.LibraryConfig) (Library, error) {
	var setSemantics bool
	switch cfg.Duplicates {
	case DuplicatesMultiset, "":
	case DuplicatesSet:
		setSemantics = true
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDuplicatePolicy, cfg.Duplicates)
	}

	var lib Library
	switch cfg.Strategy {
	case StrategyIndexed, "":
		lib = NewIndexedLibrary(cfg.BTreeDegree, cfg.BloomSize, cfg.BloomFalseProb, setSemantics)
	case StrategyScan:
		lib = NewScanLibrary(setSemantics)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}

	log.Printf("[Library] Created %s library (duplicates=%s)", lib.Strategy(), policyName(setSemantics))
	return lib, nil
}

func policyName(setSemantics bool) string {
	if setSemantics {
		return DuplicatesSet
	}
	return DuplicatesMultiset
}
