package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrUnknownKey is returned by Get and Set for unsupported keys.
var ErrUnknownKey = errors.New("unknown configuration key")

type accessor struct {
	get func(*Config) string
	set func(*Config, string) error
}

func stringKey(field func(*Config) *string) accessor {
	return accessor{
		get: func(c *Config) string { return *field(c) },
		set: func(c *Config, v string) error { *field(c) = v; return nil },
	}
}

func intKey(field func(*Config) *int) accessor {
	return accessor{
		get: func(c *Config) string { return strconv.Itoa(*field(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("expected an integer, got %q", v)
			}
			*field(c) = n
			return nil
		},
	}
}

func floatKey(field func(*Config) *float64) accessor {
	return accessor{
		get: func(c *Config) string { return strconv.FormatFloat(*field(c), 'f', -1, 64) },
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("expected a number, got %q", v)
			}
			*field(c) = f
			return nil
		},
	}
}

func boolKey(field func(*Config) *bool) accessor {
	return accessor{
		get: func(c *Config) string { return strconv.FormatBool(*field(c)) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", v)
			}
			*field(c) = b
			return nil
		},
	}
}

//nolint:gochecknoglobals // static key table
var accessors = map[string]accessor{
	"output.default_format":        stringKey(func(c *Config) *string { return &c.Output.DefaultFormat }),
	"output.precision":             intKey(func(c *Config) *int { return &c.Output.Precision }),
	"logging.level":                stringKey(func(c *Config) *string { return &c.Logging.Level }),
	"logging.format":               stringKey(func(c *Config) *string { return &c.Logging.Format }),
	"logging.file":                 stringKey(func(c *Config) *string { return &c.Logging.File }),
	"organization.name":            stringKey(func(c *Config) *string { return &c.Organization.Name }),
	"organization.industry":        stringKey(func(c *Config) *string { return &c.Organization.Industry }),
	"targets.base_year":            intKey(func(c *Config) *int { return &c.Targets.BaseYear }),
	"targets.target_year":          intKey(func(c *Config) *int { return &c.Targets.TargetYear }),
	"targets.reduction_percentage": floatKey(func(c *Config) *float64 { return &c.Targets.ReductionPercentage }),
	"targets.framework":            stringKey(func(c *Config) *string { return &c.Targets.Framework }),
	"targets.end_year":             intKey(func(c *Config) *int { return &c.Targets.EndYear }),
	"session.enabled":              boolKey(func(c *Config) *bool { return &c.Session.Enabled }),
	"session.ttl_seconds":          intKey(func(c *Config) *int { return &c.Session.TTLSeconds }),
	"server.addr":                  stringKey(func(c *Config) *string { return &c.Server.Addr }),
}

// Keys returns every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(accessors))
	for k := range accessors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "output.precision".
func (c *Config) Get(key string) (string, error) {
	a, ok := accessors[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return a.get(c), nil
}

// Set parses value and assigns it to key.
func (c *Config) Set(key, value string) error {
	a, ok := accessors[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err := a.set(c, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// List returns every key and its current value.
func (c *Config) List() map[string]string {
	out := make(map[string]string, len(accessors))
	for k, a := range accessors {
		out[k] = a.get(c)
	}
	return out
}
