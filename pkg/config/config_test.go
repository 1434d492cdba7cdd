package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/shelf.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
	// Load with empty path uses default search (may use defaults if no config file)
	cfg, _ := Load("")
	if cfg.Library.Strategy != "indexed" {
		t.Errorf("default strategy: got %s", cfg.Library.Strategy)
	}
	if cfg.Library.Duplicates != "multiset" {
		t.Errorf("default duplicates: got %s", cfg.Library.Duplicates)
	}
	if cfg.Library.BTreeDegree != 32 {
		t.Errorf("default btree_degree: got %d", cfg.Library.BTreeDegree)
	}
	if cfg.WordCount.Top != 10 {
		t.Errorf("default top: got %d", cfg.WordCount.Top)
	}
	if cfg.WordCount.Alphabet != "cyrillic" {
		t.Errorf("default alphabet: got %s", cfg.WordCount.Alphabet)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	content := `
library:
  strategy: scan
  duplicates: set
  btree_degree: 8
wordcount:
  path: "war_and_peace.txt"
  top: 5
  alphabet: letters
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Library.Strategy != "scan" {
		t.Errorf("strategy: got %s", cfg.Library.Strategy)
	}
	if cfg.Library.Duplicates != "set" {
		t.Errorf("duplicates: got %s", cfg.Library.Duplicates)
	}
	if cfg.Library.BTreeDegree != 8 {
		t.Errorf("btree_degree: got %d", cfg.Library.BTreeDegree)
	}
	if cfg.Library.BloomSize != 10000 {
		t.Errorf("bloom_size should keep default, got %d", cfg.Library.BloomSize)
	}
	if cfg.WordCount.Path != "war_and_peace.txt" {
		t.Errorf("path: got %s", cfg.WordCount.Path)
	}
	if cfg.WordCount.Top != 5 {
		t.Errorf("top: got %d", cfg.WordCount.Top)
	}
	if cfg.WordCount.Alphabet != "letters" {
		t.Errorf("alphabet: got %s", cfg.WordCount.Alphabet)
	}
}

func TestLoadFillsZeroValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	content := `
library:
  btree_degree: 0
  bloom_false_prob: 2
wordcount:
  top: -1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Library.BTreeDegree != 32 {
		t.Errorf("btree_degree: got %d", cfg.Library.BTreeDegree)
	}
	if cfg.Library.BloomFalseProb != 0.01 {
		t.Errorf("bloom_false_prob: got %f", cfg.Library.BloomFalseProb)
	}
	if cfg.WordCount.Top != 10 {
		t.Errorf("top: got %d", cfg.WordCount.Top)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("library: [unterminated"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected yaml error")
	}
}
