package app

import (
	"flag"
	"log/slog"

	"meta-ca/internal/config"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	File    string
	Verbose bool

	// Params is passed to the sim factory. Only a run file sets it.
	Params map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.File, "config", c.File, "YAML run file; explicit flags override it")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// Merge applies a run file underneath the flags that were set explicitly on
// fs. Call it after fs.Parse.
func (c *Config) Merge(fs *flag.FlagSet, f config.File) error {
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if f.Sim != "" && !set["sim"] {
		c.Sim = f.Sim
	}
	if f.Seed != nil && !set["seed"] {
		c.Seed = *f.Seed
	}
	if f.Scale > 0 && !set["scale"] {
		c.Scale = f.Scale
	}
	if f.TPS > 0 && !set["tps"] {
		c.TPS = f.TPS
	}
	params, err := f.SimParams()
	if err != nil {
		return err
	}
	c.Params = params
	return nil
}

// Load reads c.File, if set, and merges it.
func (c *Config) Load(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	f, err := config.Load(c.File)
	if err != nil {
		return err
	}
	return c.Merge(fs, f)
}

// LogLevel maps the verbosity flag to a slog level.
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
