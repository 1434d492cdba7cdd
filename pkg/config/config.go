package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Library   LibraryConfig   `yaml:"library"`
	WordCount WordCountConfig `yaml:"wordcount"`
}

type LibraryConfig struct {
	Strategy       string  `yaml:"strategy"`   // indexed | scan
	Duplicates     string  `yaml:"duplicates"` // multiset | set
	BTreeDegree    int     `yaml:"btree_degree"`
	BloomSize      uint    `yaml:"bloom_size"`
	BloomFalseProb float64 `yaml:"bloom_false_prob"`
}

type WordCountConfig struct {
	Path     string `yaml:"path"`
	Top      int    `yaml:"top"`
	Alphabet string `yaml:"alphabet"` // cyrillic | letters
}

func Default() *Config {
	return &Config{
		Library: LibraryConfig{
			Strategy:       "indexed",
			Duplicates:     "multiset",
			BTreeDegree:    32,
			BloomSize:      10000,
			BloomFalseProb: 0.01,
		},
		WordCount: WordCountConfig{
			Path:     "input.txt",
			Top:      10,
			Alphabet: "cyrillic",
		},
	}
}

func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range []string{"configs/shelf.yaml", "shelf.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		log.Println("[Config] No config file found, using defaults.")
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Library.Strategy == "" {
		cfg.Library.Strategy = "indexed"
	}
	if cfg.Library.Duplicates == "" {
		cfg.Library.Duplicates = "multiset"
	}
	if cfg.Library.BTreeDegree < 2 {
		cfg.Library.BTreeDegree = 32
	}
	if cfg.Library.BloomSize == 0 {
		cfg.Library.BloomSize = 10000
	}
	if cfg.Library.BloomFalseProb <= 0 || cfg.Library.BloomFalseProb >= 1 {
		cfg.Library.BloomFalseProb = 0.01
	}
	if cfg.WordCount.Top <= 0 {
		cfg.WordCount.Top = 10
	}
	if cfg.WordCount.Alphabet == "" {
		cfg.WordCount.Alphabet = "cyrillic"
	}
}
