package input

// SupportedSchema is the semver constraint activity files must satisfy.
const SupportedSchema = "^1"

// Defaults applied by NormalizeOrganization.
const (
	DefaultYear      = 2023
	DefaultEmployees = 1
	DefaultRevenue   = 1.0
	MinEmployees     = 1
	MinRevenue       = 0.1
)

// Accepted spellings of the Scope 2 calculation method, lower-cased.
const (
	methodLocation = "location-based"
	methodMarket   = "market-based"
)

// Organization is the profile section of an activity file. Pointer fields
// distinguish "absent" from an explicit zero.
type Organization struct {
	Name      string   `yaml:"name"      json:"name"`
	Industry  string   `yaml:"industry"  json:"industry"`
	Employees *int     `yaml:"employees" json:"employees,omitempty"`
	Revenue   *float64 `yaml:"revenue"   json:"revenue,omitempty"`
	Year      *int     `yaml:"year"      json:"year,omitempty"`
}

// Profile is a normalized organization. Revenue is in millions of USD.
type Profile struct {
	Name      string  `yaml:"name"      json:"name"`
	Industry  string  `yaml:"industry"  json:"industry"`
	Employees int     `yaml:"employees" json:"employees"`
	Revenue   float64 `yaml:"revenue"   json:"revenue"`
	Year      int     `yaml:"year"      json:"year"`
}

// Scope2Section holds purchased energy plus the accounting method settings.
// Every other key is an activity quantity.
type Scope2Section struct {
	CalculationMethod   string             `yaml:"calculation_method,omitempty"`
	GridRegion          string             `yaml:"grid_region,omitempty"`
	HasRenewablePPA     bool               `yaml:"has_renewable_ppa,omitempty"`
	RenewablePercentage float64            `yaml:"renewable_percentage,omitempty"`
	Values              map[string]float64 `yaml:",inline"`
}

// Scope3Section holds value-chain activity. ProductAvgLifetime enables the
// use_of_products category.
type Scope3Section struct {
	ProductAvgLifetime *float64           `yaml:"product_avg_lifetime,omitempty"`
	Values             map[string]float64 `yaml:",inline"`
}

// ActivityFile is one organization's activity data for a reporting year.
type ActivityFile struct {
	SchemaVersion string             `yaml:"schema_version,omitempty"`
	Organization  Organization       `yaml:"organization"`
	Scope1        map[string]float64 `yaml:"scope1,omitempty"`
	Scope2        Scope2Section      `yaml:"scope2,omitempty"`
	Scope3        Scope3Section      `yaml:"scope3,omitempty"`

	// Path is the file the data was read from, if any.
	Path string `yaml:"-"`
}
