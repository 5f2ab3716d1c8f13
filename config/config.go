package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsteiner/decompose"
	"github.com/katalvlaran/lvsteiner/pq"
	"github.com/katalvlaran/lvsteiner/reduce"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STEINER_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// validate checks the range tags below; field names follow the yaml keys.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Config is the full set of settings.
type Config struct {
	Solver        SolverConfig        `json:"solver" yaml:"solver"`
	Reduce        ReduceConfig        `json:"reduce" yaml:"reduce"`
	Decompose     DecomposeConfig     `json:"decompose" yaml:"decompose"`
	Observability ObservabilityConfig `json:"observability" yaml:"observability"`
}

// SolverConfig tunes the exact solver.
type SolverConfig struct {
	Arity               int           `json:"arity" yaml:"arity" validate:"gte=2"`
	BucketThreshold     int           `json:"bucket_threshold" yaml:"bucket_threshold" validate:"gte=0"`
	MaxBucketRange      int64         `json:"max_bucket_range" yaml:"max_bucket_range" validate:"gte=0"`
	MSTHeuristic        bool          `json:"mst_heuristic" yaml:"mst_heuristic"`
	DualAscentHeuristic bool          `json:"dual_ascent_heuristic" yaml:"dual_ascent_heuristic"`
	LabelStore          bool          `json:"label_store" yaml:"label_store"`
	SubsetBound         bool          `json:"subset_bound" yaml:"subset_bound"`
	Timeout             time.Duration `json:"timeout" yaml:"timeout" validate:"gte=0"`

	// Fallback answers with the approximation when Timeout expires.
	Fallback bool `json:"fallback" yaml:"fallback"`
}

// ReduceConfig configures the reduction pipeline.
type ReduceConfig struct {
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	Rules       []string      `json:"rules" yaml:"rules"`
	MaxPasses   int           `json:"max_passes" yaml:"max_passes" validate:"gte=1"`
	Threshold   float64       `json:"threshold" yaml:"threshold" validate:"gte=0,lte=1"`
	RuleTimeout time.Duration `json:"rule_timeout" yaml:"rule_timeout" validate:"gte=0"`
}

// DecomposeConfig configures bridge decomposition.
type DecomposeConfig struct {
	Enabled        bool `json:"enabled" yaml:"enabled"`
	MaxConcurrency int  `json:"max_concurrency" yaml:"max_concurrency" validate:"gte=1"`
}

// ObservabilityConfig configures logs, traces and metrics.
type ObservabilityConfig struct {
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" validate:"oneof=text json"`
	Tracing   bool   `json:"tracing" yaml:"tracing"`
	Metrics   bool   `json:"metrics" yaml:"metrics"`
}

// Default returns the built-in settings.
func Default() Config {
	q := pq.DefaultOptions()
	rules := make([]string, 0, 5)
	for _, r := range reduce.DefaultRules() {
		rules = append(rules, r.Name())
	}

	return Config{
		Solver: SolverConfig{
			Arity:           q.Arity,
			BucketThreshold: q.BucketThreshold,
			MaxBucketRange:  q.MaxBucketRange,
			MSTHeuristic:    true,
			LabelStore:      true,
			SubsetBound:     true,
			Fallback:        true,
		},
		Reduce: ReduceConfig{
			Enabled:     true,
			Rules:       rules,
			MaxPasses:   reduce.DefaultMaxPasses,
			Threshold:   reduce.DefaultThreshold,
			RuleTimeout: reduce.DefaultRuleTimeout,
		},
		Decompose: DecomposeConfig{
			Enabled:        true,
			MaxConcurrency: runtime.GOMAXPROCS(0),
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "text",
		},
	}
}

// Load merges defaults, the file at path (skipped when empty or missing)
// and the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	loadEnv(&cfg, os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

// loadEnv applies STEINER_* overrides read through lookup.
func loadEnv(cfg *Config, lookup func(string) (string, bool)) {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	setInt := func(name string, dst *int) {
		if v, ok := get(name); ok {
			if i, err := strconv.Atoi(v); err == nil {
				*dst = i
			}
		}
	}
	setBool := func(name string, dst *bool) {
		if v, ok := get(name); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}
	setDuration := func(name string, dst *time.Duration) {
		if v, ok := get(name); ok {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	// Solver
	setInt("ARITY", &cfg.Solver.Arity)
	setInt("BUCKET_THRESHOLD", &cfg.Solver.BucketThreshold)
	if v, ok := get("MAX_BUCKET_RANGE"); ok {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Solver.MaxBucketRange = i
		}
	}
	setBool("MST_HEURISTIC", &cfg.Solver.MSTHeuristic)
	setBool("DUAL_ASCENT_HEURISTIC", &cfg.Solver.DualAscentHeuristic)
	setBool("LABEL_STORE", &cfg.Solver.LabelStore)
	setBool("SUBSET_BOUND", &cfg.Solver.SubsetBound)
	setDuration("TIMEOUT", &cfg.Solver.Timeout)
	setBool("FALLBACK", &cfg.Solver.Fallback)

	// Reduce
	setBool("REDUCE", &cfg.Reduce.Enabled)
	if v, ok := get("REDUCE_RULES"); ok {
		cfg.Reduce.Rules = cfg.Reduce.Rules[:0:0]
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Reduce.Rules = append(cfg.Reduce.Rules, name)
			}
		}
	}
	setInt("REDUCE_MAX_PASSES", &cfg.Reduce.MaxPasses)
	if v, ok := get("REDUCE_THRESHOLD"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Reduce.Threshold = f
		}
	}
	setDuration("REDUCE_RULE_TIMEOUT", &cfg.Reduce.RuleTimeout)

	// Decompose
	setBool("DECOMPOSE", &cfg.Decompose.Enabled)
	setInt("MAX_CONCURRENCY", &cfg.Decompose.MaxConcurrency)

	// Observability
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.Observability.LogLevel = strings.ToLower(v)
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.Observability.LogFormat = strings.ToLower(v)
	}
	setBool("TRACING", &cfg.Observability.Tracing)
	setBool("METRICS", &cfg.Observability.Metrics)
}

// Validate reports the first invalid setting, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			field := strings.TrimPrefix(fe.Namespace(), "Config.")
			return fmt.Errorf("%w: %s must be %s %s, got %v", ErrInvalid, field, fe.Tag(), fe.Param(), fe.Value())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Observability.Level(); err != nil {
		return err
	}
	for _, name := range c.Reduce.Rules {
		if _, err := reduce.RuleByName(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}

	return nil
}

// Level parses LogLevel.
func (o ObservabilityConfig) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return l, fmt.Errorf("%w: log_level %q", ErrInvalid, o.LogLevel)
	}

	return l, nil
}

// Queue returns the priority-queue options.
func (s SolverConfig) Queue() pq.Options {
	return pq.Options{
		Arity:           s.Arity,
		BucketThreshold: s.BucketThreshold,
		MaxBucketRange:  s.MaxBucketRange,
	}
}

// Options returns the solver options for s.
func (s SolverConfig) Options(logger *slog.Logger) []steiner.Option {
	opts := []steiner.Option{
		steiner.WithQueue(s.Queue()),
		steiner.WithMSTHeuristic(s.MSTHeuristic),
		steiner.WithDualAscentHeuristic(s.DualAscentHeuristic),
		steiner.WithLabelStore(s.LabelStore),
		steiner.WithSubsetBound(s.SubsetBound),
	}
	if logger != nil {
		opts = append(opts, steiner.WithLogger(logger))
	}

	return opts
}

// Pipeline builds a reduction pipeline over the configured rules.
func (r ReduceConfig) Pipeline(logger *slog.Logger) (*reduce.Pipeline, error) {
	rules := make([]reduce.Rule, 0, len(r.Rules))
	for _, name := range r.Rules {
		rule, err := reduce.RuleByName(name)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	p := reduce.NewPipeline(rules...)
	if len(rules) == 0 {
		p.Rules = nil
	}
	p.MaxPasses = r.MaxPasses
	p.Threshold = r.Threshold
	p.RuleTimeout = r.RuleTimeout
	if logger != nil {
		p.Logger = logger
	}

	return p, nil
}

// Options returns the decomposition options.
func (d DecomposeConfig) Options(logger *slog.Logger) []decompose.Option {
	return []decompose.Option{
		decompose.WithMaxConcurrency(d.MaxConcurrency),
		decompose.WithLogger(logger),
	}
}
