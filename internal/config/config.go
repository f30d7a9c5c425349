package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Environment variables read by fcmd.
const (
	EnvPathVar = "FCMD_PATH_VAR"
	EnvOrder   = "FCMD_ORDER"
	EnvOutput  = "FCMD_OUTPUT"
	EnvDebug   = "FCMD_DEBUG"

	DefaultPathVar = "PATH"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config is everything fcmd takes from the process environment.
// Flags override the Order, Output and Verbose defaults.
type Config struct {
	PathVar    string
	SearchPath []string
	Order      string
	Output     string
	Verbose    bool
}

// Load resolves the configuration through lookup. A nil lookup means
// os.LookupEnv. An unset search-path variable yields an empty SearchPath.
func Load(lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &Config{
		PathVar: get(EnvPathVar),
		Order:   get(EnvOrder),
		Output:  get(EnvOutput),
	}
	if cfg.PathVar == "" {
		cfg.PathVar = DefaultPathVar
	}
	// Not trimmed: surrounding spaces are legal in directory names.
	raw, _ := lookup(cfg.PathVar)
	cfg.SearchPath = SplitSearchPath(raw)

	if v := get(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvDebug, v, err)
		}
		cfg.Verbose = b
	}
	return cfg, nil
}

// SplitSearchPath splits a search-path value on the OS list separator
// (':' on POSIX, ';' on Windows). Empty elements mean the current directory.
func SplitSearchPath(value string) []string {
	parts := filepath.SplitList(value)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			p = "."
		}
		out = append(out, p)
	}
	return out
}
