// Package report writes scan results for one or more keywords.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kamusis/fcmd/internal/pathscan"
)

// RelatedHeader introduces the related matches in text output.
const RelatedHeader = "Related commands:"

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts text, json or yaml (case-insensitive). Empty means Text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return Text, nil
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Entry is the result for one keyword, in argument order.
type Entry struct {
	Keyword string
	Result  pathscan.MatchResult
}

// record is the structured form shared by JSON and YAML.
type record struct {
	Keyword string   `json:"keyword" yaml:"keyword"`
	Exact   []string `json:"exact" yaml:"exact"`
	Related []string `json:"related" yaml:"related"`
}

// Write renders entries to w.
func Write(w io.Writer, format Format, entries []Entry) error {
	switch format {
	case Text, "":
		return writeText(w, entries)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records(entries)); err != nil {
			return fmt.Errorf("cannot encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records(entries)); err != nil {
			return fmt.Errorf("cannot encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeText prints exact matches one per line, then, if there are any
// related matches, a blank line, the header and the related matches.
func writeText(w io.Writer, entries []Entry) error {
	var b strings.Builder
	for _, e := range entries {
		for _, p := range e.Result.Exact {
			b.WriteString(p)
			b.WriteByte('\n')
		}
		if len(e.Result.Related) == 0 {
			continue
		}
		b.WriteString("\n" + RelatedHeader + "\n")
		for _, p := range e.Result.Related {
			b.WriteString(p)
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func records(entries []Entry) []record {
	out := make([]record, 0, len(entries))
	for _, e := range entries {
		r := record{
			Keyword: e.Keyword,
			Exact:   e.Result.Exact,
			Related: e.Result.Related,
		}
		if r.Exact == nil {
			r.Exact = []string{}
		}
		if r.Related == nil {
			r.Related = []string{}
		}
		out = append(out, r)
	}
	return out
}
