package experiments

import (
	"errors"
	"fmt"
	"lookahead/engine"
	"lookahead/game/maze"
	"lookahead/searcher"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one experiment: every policy plays Games games on every
// layout.
type Config struct {
	Name        string   `yaml:"name"`
	Games       int      `yaml:"games"`
	Workers     int      `yaml:"workers"` // Games played concurrently
	Seed        uint64   `yaml:"seed"`
	Budget      int      `yaml:"budget"`
	MaxTurns    int      `yaml:"max_turns"`
	Evaluator   string   `yaml:"evaluator"`
	Layouts     []string `yaml:"layouts"`
	Policies    []string `yaml:"policies"`
	OutputDir   string   `yaml:"output_dir"`   // Empty skips the CSV records
	MetricsFile string   `yaml:"metrics_file"` // Empty skips the Prometheus textfile
}

func DefaultConfig() Config {
	return Config{
		Name:      "policies",
		Games:     10,
		Workers:   4,
		Seed:      1,
		Budget:    engine.DefaultBudget,
		MaxTurns:  engine.DefaultMaxTurns,
		Evaluator: "score",
		Layouts:   []string{"tiny", "small"},
		Policies:  []string{"random", "greedy", "breadth", "depth", "costWeighted"},
		OutputDir: "results",
	}
}

// ParseConfig reads YAML on top of DefaultConfig, so omitted keys keep their
// defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}
	return ParseConfig(data)
}

func (c Config) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if c.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.Budget <= 0 {
		errs = append(errs, fmt.Errorf("budget must be positive, got %d", c.Budget))
	}
	if c.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	if _, err := maze.Evaluator(c.Evaluator); err != nil {
		errs = append(errs, err)
	}
	if len(c.Layouts) == 0 {
		errs = append(errs, errors.New("at least one layout is required"))
	}
	if len(c.Policies) == 0 {
		errs = append(errs, errors.New("at least one policy is required"))
	}
	for _, name := range c.Policies {
		if _, err := searcher.ParsePolicy(name); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid experiment config: %w", err)
	}
	return nil
}
