package benchmark

// OtherIndustry is the fallback row for unrecognised industries.
const OtherIndustry = "Other"

// Intensity is an industry's emissions intensity range in tCO2e per $M revenue.
type Intensity struct {
	Average float64 `json:"avg_intensity"`
	Best    float64 `json:"best_performer"`
	Worst   float64 `json:"worst_performer"`
}

// Distribution is a typical split of emissions across scopes, in percent.
type Distribution struct {
	Scope1 float64 `json:"scope1"`
	Scope2 float64 `json:"scope2"`
	Scope3 float64 `json:"scope3"`
}

// industries is kept in display order.
//
//nolint:gochecknoglobals // static reference data
var industries = []string{
	"Agriculture", "Automotive", "Aviation", "Chemical", "Construction",
	"Education", "Energy", "Financial Services", "Food & Beverage", "Healthcare",
	"Hospitality", "Information Technology", "Manufacturing", "Mining", "Real Estate",
	"Retail", "Telecommunications", "Transportation", "Utilities", OtherIndustry,
}

//nolint:gochecknoglobals // static reference data
var intensities = map[string]Intensity{
	"Agriculture":            {Average: 120, Best: 60, Worst: 250},
	"Automotive":             {Average: 65, Best: 25, Worst: 150},
	"Aviation":               {Average: 350, Best: 180, Worst: 600},
	"Chemical":               {Average: 180, Best: 90, Worst: 350},
	"Construction":           {Average: 75, Best: 30, Worst: 200},
	"Education":              {Average: 40, Best: 15, Worst: 100},
	"Energy":                 {Average: 250, Best: 100, Worst: 500},
	"Financial Services":     {Average: 20, Best: 5, Worst: 60},
	"Food & Beverage":        {Average: 85, Best: 35, Worst: 200},
	"Healthcare":             {Average: 55, Best: 20, Worst: 120},
	"Hospitality":            {Average: 70, Best: 25, Worst: 150},
	"Information Technology": {Average: 30, Best: 10, Worst: 80},
	"Manufacturing":          {Average: 100, Best: 45, Worst: 220},
	"Mining":                 {Average: 300, Best: 150, Worst: 600},
	"Real Estate":            {Average: 60, Best: 25, Worst: 130},
	"Retail":                 {Average: 45, Best: 20, Worst: 110},
	"Telecommunications":     {Average: 35, Best: 15, Worst: 80},
	"Transportation":         {Average: 150, Best: 70, Worst: 300},
	"Utilities":              {Average: 200, Best: 90, Worst: 400},
	OtherIndustry:            {Average: 80, Best: 30, Worst: 200},
}

//nolint:gochecknoglobals // static reference data
var distributions = map[string]Distribution{
	"Agriculture":            {40, 10, 50},
	"Automotive":             {15, 25, 60},
	"Aviation":               {70, 5, 25},
	"Chemical":               {45, 25, 30},
	"Construction":           {20, 15, 65},
	"Education":              {10, 45, 45},
	"Energy":                 {60, 5, 35},
	"Financial Services":     {5, 25, 70},
	"Food & Beverage":        {25, 20, 55},
	"Healthcare":             {15, 35, 50},
	"Hospitality":            {20, 40, 40},
	"Information Technology": {5, 30, 65},
	"Manufacturing":          {30, 25, 45},
	"Mining":                 {50, 15, 35},
	"Real Estate":            {10, 50, 40},
	"Retail":                 {10, 30, 60},
	"Telecommunications":     {5, 35, 60},
	"Transportation":         {65, 10, 25},
	"Utilities":              {70, 5, 25},
	OtherIndustry:            {25, 25, 50},
}

// GlobalAverage is the row name for the world per-capita average.
const GlobalAverage = "Global Average"

// Country is a per-capita emissions figure in tCO2e.
type Country struct {
	Name      string  `json:"country"`
	PerCapita float64 `json:"per_capita"`
}

//nolint:gochecknoglobals // static reference data
var countries = []Country{
	{"Qatar", 37.0},
	{"United States", 15.5},
	{"Australia", 15.4},
	{"Canada", 15.1},
	{"Russia", 11.7},
	{"Japan", 8.7},
	{"Germany", 8.4},
	{"China", 7.4},
	{"United Kingdom", 5.5},
	{"France", 4.6},
	{"Brazil", 2.2},
	{"India", 1.9},
	{"Kenya", 0.3},
	{"Ethiopia", 0.1},
	{GlobalAverage, 4.5},
}

// nationalTotals are annual national emissions used to put an
// organization's total in context.
//
//nolint:gochecknoglobals // static reference data
var nationalTotals = []Country{
	{"United States", 5.0e9},
	{"Germany", 7.0e8},
	{"Finland", 5.0e7},
	{"Jamaica", 7.8e6},
	{"Barbados", 4.4e5},
}
