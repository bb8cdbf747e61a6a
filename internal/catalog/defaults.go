package catalog

import "github.com/alexanderramin/metis/internal/domain"

// defaultRecommendations provides one fallback recommendation per domain,
// used when no answered question in the domain contributed any.
var defaultRecommendations = map[domain.ReadinessDomain]string{
	domain.DomainDataInfrastructure:      "Consider implementing a centralized data storage solution",
	domain.DomainTalentCapability:        "Invest in AI and data science training for your team",
	domain.DomainEthicsGovernance:        "Develop AI ethics guidelines and governance frameworks",
	domain.DomainTechnicalInfrastructure: "Evaluate and upgrade computing resources for AI workloads",
	domain.DomainBusinessStrategy:        "Align AI initiatives with business objectives",
	domain.DomainDataQuality:             "Implement data quality assessment and improvement processes",
	domain.DomainSecurityCompliance:      "Review and enhance data security measures",
}

// DefaultRecommendation returns the static fallback recommendation for a
// domain.
func DefaultRecommendation(d domain.ReadinessDomain) string {
	return defaultRecommendations[d]
}

// Benchmark placeholder constants. Real anonymized benchmark data is a
// non-goal; these are documented stand-ins, not computed values.
const (
	BenchmarkIndustryAverage       = 65.0
	BenchmarkPercentileHigh        = 75
	BenchmarkPercentileLow         = 25
	BenchmarkSimilarCompanyAverage = 70.0
	BenchmarkSimilarCompanyCount   = 50
)

// ROI placeholder multipliers attached to every cost estimate.
const (
	ROIOptimistic   = 2.5
	ROIConservative = 1.5
	ROITimeframeMo  = 24
)

// Milestones is the fixed implementation plan attached to every result
// regardless of score.
func Milestones() []domain.Milestone {
	return []domain.Milestone{
		{Month: 3, Description: "Initial Assessment and Planning", Domain: domain.DomainBusinessStrategy},
		{Month: 6, Description: "Infrastructure Setup", Domain: domain.DomainTechnicalInfrastructure},
		{Month: 9, Description: "Data Integration", Domain: domain.DomainDataInfrastructure},
		{Month: 12, Description: "Team Training", Domain: domain.DomainTalentCapability},
	}
}
