// Package config loads the TOML run configuration of the kruskals command.
//
//	input          = "assn9_data.csv"
//	delimiter      = ","
//	method         = "kruskal"   # or "prim"
//	root           = "Dallas"    # prim only; empty = first city in the file
//	log_level      = "info"
//	allow_negative = false
//
// Keys missing from the file keep their Default value.
package config

import (
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/kruskals/prim_kruskal"
	"github.com/pingcap/errors"
)

// DefaultInput is the edge-list file read when nothing else is configured.
const DefaultInput = "assn9_data.csv"

var (
	// ErrBadDelimiter indicates a delimiter that is not exactly one usable rune.
	ErrBadDelimiter = errors.New("config: delimiter must be a single character other than quote, # or newline")

	// ErrBadMethod indicates an MST method other than kruskal or prim.
	ErrBadMethod = errors.New("config: unknown method")
)

// Config is the resolved run configuration.
type Config struct {
	Input         string
	Delimiter     rune
	Method        string
	Root          string
	LogLevel      string
	AllowNegative bool
}

type fileConfig struct {
	Input         string `toml:"input"`
	Delimiter     string `toml:"delimiter"`
	Method        string `toml:"method"`
	Root          string `toml:"root"`
	LogLevel      string `toml:"log_level"`
	AllowNegative bool   `toml:"allow_negative"`
}

// Default returns the configuration used without a file or flags.
func Default() Config {
	return Config{
		Input:     DefaultInput,
		Delimiter: ',',
		Method:    prim_kruskal.MethodKruskal,
		LogLevel:  "info",
	}
}

// Load decodes path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errors.Annotatef(err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("delimiter") {
		d, err := ParseDelimiter(raw.Delimiter)
		if err != nil {
			return Config{}, errors.Annotatef(err, "load config %s", path)
		}
		cfg.Delimiter = d
	}
	if meta.IsDefined("method") {
		cfg.Method = strings.ToLower(strings.TrimSpace(raw.Method))
	}
	if meta.IsDefined("root") {
		cfg.Root = strings.TrimSpace(raw.Root)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("allow_negative") {
		cfg.AllowNegative = raw.AllowNegative
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Annotatef(err, "load config %s", path)
	}

	return cfg, nil
}

// ParseDelimiter accepts a single character; the two-character escape `\t` means tab.
func ParseDelimiter(raw string) (rune, error) {
	if raw == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(raw) != 1 {
		return 0, errors.Annotatef(ErrBadDelimiter, "%q", raw)
	}
	d, _ := utf8.DecodeRuneInString(raw)
	if d == '"' || d == '#' || d == '\r' || d == '\n' || d == utf8.RuneError {
		return 0, errors.Annotatef(ErrBadDelimiter, "%q", raw)
	}

	return d, nil
}

// Validate checks the fields that can be wrong after decoding or flag overrides.
func (c Config) Validate() error {
	switch c.Method {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		return errors.Annotatef(ErrBadMethod, "%q", c.Method)
	}
	if _, err := ParseDelimiter(string(c.Delimiter)); err != nil {
		return err
	}
	if c.Input == "" {
		return errors.New("config: input path is empty")
	}

	return nil
}
