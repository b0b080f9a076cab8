package gen

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Probabilities holds the per-tick Bernoulli trial probabilities. The four
// trials are independent: any subset of counters may advance in one tick.
type Probabilities struct {
	Like     float64 `yaml:"like"`
	Bookmark float64 `yaml:"bookmark"`
	Share    float64 `yaml:"share"`
	Comment  float64 `yaml:"comment"`
}

// Config is the site profile: everything content-level about the page being
// animated. Process-level knobs (seed, output dir, tick bound) stay on the
// CLI. Loaded from YAML via LoadConfig(path); zero-config runs use
// DefaultConfig().
type Config struct {
	Title           string        `yaml:"title"`
	DescriptionHTML string        `yaml:"description_html"`
	URLPath         string        `yaml:"url_path"`
	ResponseBytes   int           `yaml:"response_bytes"`
	Probabilities   Probabilities `yaml:"probabilities"`
	UserAgents      []string      `yaml:"user_agents"`
	Referrers       []string      `yaml:"referrers"`
	MinWaitS        int           `yaml:"min_wait_s"`
	MaxWaitS        int           `yaml:"max_wait_s"`
	ImageBasename   string        `yaml:"image_basename"`
	CommentSource   string        `yaml:"comment_source"`
}

// DefaultConfig returns the built-in site profile.
func DefaultConfig() *Config {
	return &Config{
		Title: "The Grove Pledge",
		DescriptionHTML: "A pop-up forest of sculptures built entirely from reclaimed material.<br>" +
			"▪️ A product gallery exploring sustainable design;<br>" +
			"▪️ An upcycled-art exhibit asking what we throw away, and why.<br>" +
			"The pledge continues online — protecting the forest is a project that never ends.",
		URLPath:       "/index.html",
		ResponseBytes: 5123,
		Probabilities: Probabilities{
			Like:     0.55,
			Bookmark: 0.40,
			Share:    0.35,
			Comment:  0.50,
		},
		UserAgents: []string{
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/126.0.0.0 Safari/537.36",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Safari/605.1.15",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148 Safari/604.1",
			"Mozilla/5.0 (Linux; Android 14; Pixel 7) Chrome/124.0.0.0 Mobile Safari/537.36",
		},
		Referrers: []string{
			"-",
			"https://www.xiaohongshu.com/",
			"https://weibo.com/",
		},
		MinWaitS:      5,
		MaxWaitS:      300,
		ImageBasename: "a",
		CommentSource: "comments.pdf",
	}
}

// LoadConfig reads and parses a YAML site profile. Fields omitted from the
// file keep their DefaultConfig values. Uses strict parsing: unrecognized
// keys (typos) are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site profile: %w", err)
	}
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing site profile: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all fields in the profile are usable.
func (c *Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if c.URLPath == "" {
		return fmt.Errorf("url_path must not be empty")
	}
	if c.ResponseBytes < 0 {
		return fmt.Errorf("response_bytes must be non-negative, got %d", c.ResponseBytes)
	}
	for name, p := range map[string]float64{
		"like":     c.Probabilities.Like,
		"bookmark": c.Probabilities.Bookmark,
		"share":    c.Probabilities.Share,
		"comment":  c.Probabilities.Comment,
	} {
		if err := validateProbability("probabilities."+name, p); err != nil {
			return err
		}
	}
	if len(c.UserAgents) == 0 {
		return fmt.Errorf("user_agents must list at least one entry")
	}
	if len(c.Referrers) == 0 {
		return fmt.Errorf("referrers must list at least one entry")
	}
	if c.MinWaitS < 1 {
		return fmt.Errorf("min_wait_s must be positive, got %d", c.MinWaitS)
	}
	if c.MaxWaitS < c.MinWaitS {
		return fmt.Errorf("max_wait_s must be >= min_wait_s, got %d < %d", c.MaxWaitS, c.MinWaitS)
	}
	if c.ImageBasename == "" {
		return fmt.Errorf("image_basename must not be empty")
	}
	return nil
}

func validateProbability(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 || val > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %f", name, val)
	}
	return nil
}
