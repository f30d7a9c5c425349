package cmd

import (
	"github.com/spf13/pflag"

	"github.com/kamusis/fcmd/internal/pathscan"
	"github.com/kamusis/fcmd/internal/report"
)

var (
	_ pflag.Value = (*orderValue)(nil)
	_ pflag.Value = (*formatValue)(nil)
)

// orderValue is the --order flag.
type orderValue struct{ o pathscan.Order }

func (v *orderValue) String() string { return v.o.String() }
func (v *orderValue) Type() string   { return "order" }

func (v *orderValue) Set(s string) error {
	o, err := pathscan.ParseOrder(s)
	if err != nil {
		return err
	}
	v.o = o
	return nil
}

// formatValue is the --output flag.
type formatValue struct{ f report.Format }

func (v *formatValue) String() string { return string(v.f) }
func (v *formatValue) Type() string   { return "format" }

func (v *formatValue) Set(s string) error {
	f, err := report.ParseFormat(s)
	if err != nil {
		return err
	}
	v.f = f
	return nil
}
