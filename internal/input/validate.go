package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/rshade/carbonfocus/internal/factors"
)

// Validate checks the file and returns a *ValidationError listing every
// problem, or nil. Unknown grid regions are not an error.
func (f *ActivityFile) Validate() error {
	verr := &ValidationError{Path: f.Path}

	validateSchema(verr, f.SchemaVersion)
	validateOrganization(verr, f.Organization)
	validateValues(verr, "scope1", factors.Scope1, f.Scope1)
	validateValues(verr, "scope2", factors.Scope2, f.Scope2.Values)
	validateValues(verr, "scope3", factors.Scope3, f.Scope3.Values)

	if _, err := parseMethod(f.Scope2.CalculationMethod); err != nil {
		verr.add("scope2.calculation_method", "%v", err)
	}
	if p := f.Scope2.RenewablePercentage; p < 0 || p > 100 {
		verr.add("scope2.renewable_percentage", "must be between 0 and 100, got %g", p)
	}
	if l := f.Scope3.ProductAvgLifetime; l != nil && *l < 0 {
		verr.add("scope3.product_avg_lifetime", "must not be negative, got %g", *l)
	}

	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}

func validateSchema(verr *ValidationError, version string) {
	if version == "" {
		return
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		verr.add("schema_version", "not a semantic version: %q", version)
		return
	}
	c, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		verr.add("schema_version", "internal constraint error: %v", err)
		return
	}
	if !c.Check(v) {
		verr.add("schema_version", "version %s does not satisfy %s", v, SupportedSchema)
	}
}

func validateOrganization(verr *ValidationError, o Organization) {
	if o.Employees != nil && *o.Employees < 0 {
		verr.add("organization.employees", "must not be negative, got %d", *o.Employees)
	}
	if o.Revenue != nil && *o.Revenue < 0 {
		verr.add("organization.revenue", "must not be negative, got %g", *o.Revenue)
	}
}

func validateValues(verr *ValidationError, section string, scope factors.Scope, values map[string]float64) {
	for _, key := range sortedKeys(values) {
		field := section + "." + key
		c, err := factors.ParseCategory(key)
		switch {
		case err != nil:
			verr.add(field, "unknown category")
			continue
		case c.Scope() != scope:
			verr.add(field, "category belongs to %s", c.Scope())
			continue
		}
		if v := values[key]; v < 0 {
			verr.add(field, "must not be negative, got %g", v)
		}
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseMethod normalizes a calculation method name. Empty means market-based.
func parseMethod(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "location", methodLocation:
		return methodLocation, nil
	case "", "market", methodMarket:
		return methodMarket, nil
	default:
		return "", fmt.Errorf("unknown calculation method %q", s)
	}
}
