package strategies

//nolint:gochecknoglobals // static reference data
var industryRecommendations = map[string][]string{
	"Agriculture": {
		"Implement precision agriculture techniques to reduce fertilizer use",
		"Convert to sustainable land management practices that sequester carbon",
		"Adopt renewable energy for farm operations",
		"Optimize livestock management to reduce methane emissions",
		"Implement water conservation measures",
	},
	"Automotive": {
		"Accelerate transition to electric vehicle manufacturing",
		"Redesign production processes to minimize waste and energy use",
		"Source sustainable materials for vehicle components",
		"Optimize supply chain logistics",
		"Implement circular economy principles in manufacturing",
	},
	"Aviation": {
		"Invest in sustainable aviation fuels",
		"Optimize flight routes and operations",
		"Implement weight reduction strategies",
		"Electrify ground operations",
		"Collaborate on industry-wide decarbonization initiatives",
	},
	"Chemical": {
		"Redesign processes to improve energy efficiency",
		"Implement carbon capture for high-emission processes",
		"Switch to bio-based or recycled feedstocks",
		"Optimize waste heat recovery",
		"Reduce process emissions through catalytic improvements",
	},
	"Construction": {
		"Use low-carbon concrete and building materials",
		"Implement prefabrication to reduce on-site waste",
		"Electrify construction equipment",
		"Design buildings for energy efficiency and low embodied carbon",
		"Implement sustainable construction site practices",
	},
	"Education": {
		"Implement campus-wide energy efficiency programs",
		"Install on-site renewable energy generation",
		"Develop sustainable transportation options for students and staff",
		"Integrate sustainability into curriculum and operations",
		"Implement sustainable procurement policies",
	},
	"Energy": {
		"Accelerate transition to renewable energy generation",
		"Implement energy storage solutions",
		"Reduce methane leakage in natural gas operations",
		"Optimize grid efficiency and demand management",
		"Implement carbon capture and storage for remaining fossil generation",
	},
	"Other": {
		"Implement organization-wide energy efficiency measures",
		"Transition to renewable energy through on-site generation or purchasing",
		"Develop a sustainable procurement policy",
		"Reduce business travel and support remote work",
		"Engage suppliers on emissions reduction initiatives",
	},
}

// IndustryRecommendations returns industry-specific actions, or the generic
// "Other" list when the industry has none of its own.
func IndustryRecommendations(industry string) []string {
	recs, ok := industryRecommendations[industry]
	if !ok {
		recs = industryRecommendations["Other"]
	}
	return append([]string(nil), recs...)
}
