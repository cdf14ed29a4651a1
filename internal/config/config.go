// Package config resolves the environment defaults for the month window.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/errors"
	"github.com/spf13/viper"
)

// Environment variables holding the default before/after counts. The NOARGS
// variants apply when no positional arguments are given.
const (
	EnvBeforeNoArgs = "DATE_BEFORE_NOARGS"
	EnvBeforeArgs   = "DATE_BEFORE_ARGS"
	EnvAfterNoArgs  = "DATE_AFTER_NOARGS"
	EnvAfterArgs    = "DATE_AFTER_ARGS"
	EnvNoColor      = "NO_COLOR"
)

// ErrEnvParse indicates an environment variable could not be parsed.
var ErrEnvParse = errors.New("malformed environment variable")

// EnvParseError names the variable that failed to parse.
type EnvParseError struct {
	Name  string
	Value string
	Err   error
}

func (e *EnvParseError) Error() string {
	return fmt.Sprintf("%s=%q: %v: %v", e.Name, e.Value, ErrEnvParse, e.Err)
}

func (e *EnvParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrEnvParse) succeed.
func (e *EnvParseError) Is(target error) bool { return target == ErrEnvParse }

// Defaults are the month counts used when -b/-a/-c are not given.
type Defaults struct {
	BeforeNoArgs int
	BeforeArgs   int
	AfterNoArgs  int
	AfterArgs    int
	NoColor      bool
}

// Builtin returns the defaults used when no environment variable is set.
func Builtin() Defaults {
	return Defaults{
		BeforeNoArgs: 1,
		BeforeArgs:   4,
		AfterNoArgs:  4,
		AfterArgs:    4,
	}
}

// Counts returns the before and after counts for a run with or without
// positional arguments.
func (d Defaults) Counts(hasArgs bool) (before, after int) {
	if hasArgs {
		return d.BeforeArgs, d.AfterArgs
	}
	return d.BeforeNoArgs, d.AfterNoArgs
}

// Load reads the defaults from the process environment. Every malformed
// variable is reported.
func Load() (Defaults, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Defaults, error) {
	d := Builtin()
	counts := []struct {
		name string
		dst  *int
	}{
		{EnvBeforeNoArgs, &d.BeforeNoArgs},
		{EnvBeforeArgs, &d.BeforeArgs},
		{EnvAfterNoArgs, &d.AfterNoArgs},
		{EnvAfterArgs, &d.AfterArgs},
	}

	errs := &errors.M{}
	for _, c := range counts {
		v.SetDefault(c.name, *c.dst)
		if err := v.BindEnv(c.name); err != nil {
			errs.Append(err)
			continue
		}
		raw := v.GetString(c.name)
		n, err := ParseCount(raw)
		if err != nil {
			errs.Append(&EnvParseError{Name: c.name, Value: raw, Err: err})
			continue
		}
		*c.dst = n
	}

	if err := v.BindEnv(EnvNoColor); err != nil {
		errs.Append(err)
	}
	d.NoColor = v.GetString(EnvNoColor) != ""
	return d, errs.Err()
}

// ParseCount parses a non-negative decimal month count.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return n, nil
}
