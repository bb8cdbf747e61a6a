package catalog

import "github.com/alexanderramin/metis/internal/domain"

// industryQuestions are follow-ups keyed by industry. Each is additionally
// gated on a base-question answer via its dependency.
var industryQuestions = map[domain.Industry][]domain.Question{
	domain.IndustryHealthcare: {
		{
			ID:     "healthcare-data-privacy",
			Domain: domain.DomainSecurityCompliance,
			Text:   "How does your organization handle healthcare data privacy and HIPAA compliance?",
			Weight: standardWeight(2.0),
			Dependencies: []domain.Dependency{
				{QuestionID: "data-storage", RequiredAnswer: 3},
			},
			Options: []domain.Option{
				{
					Value:       1,
					Label:       "Basic",
					Description: "Minimal HIPAA compliance measures",
					Recommendations: []string{
						"Implement comprehensive HIPAA compliance program",
						"Develop healthcare-specific data security protocols",
						"Create PHI access audit system",
					},
					EstimatedCost: usd(100000, 200000),
				},
				{
					Value:       4,
					Label:       "Advanced",
					Description: "Full HIPAA compliance with automated monitoring",
					Recommendations: []string{
						"Implement AI-driven privacy monitoring",
						"Develop advanced encryption protocols",
						"Create automated compliance reporting",
					},
					EstimatedCost: usd(400000, 800000),
				},
			},
		},
	},
	domain.IndustryFinance: {
		{
			ID:     "finance-risk-assessment",
			Domain: domain.DomainEthicsGovernance,
			Text:   "How does your organization handle AI risk assessment in financial operations?",
			Weight: standardWeight(2.0),
			Dependencies: []domain.Dependency{
				{QuestionID: "ethical-governance", RequiredAnswer: 3},
			},
			Options: []domain.Option{
				{
					Value:       1,
					Label:       "Basic",
					Description: "Manual risk assessment procedures",
					Recommendations: []string{
						"Implement automated risk assessment",
						"Develop financial AI governance",
						"Create risk monitoring dashboard",
					},
					EstimatedCost: usd(200000, 400000),
				},
				{
					Value:       4,
					Label:       "Advanced",
					Description: "AI-driven risk assessment and monitoring",
					Recommendations: []string{
						"Implement predictive risk modeling",
						"Develop real-time monitoring",
						"Create advanced reporting system",
					},
					EstimatedCost: usd(800000, 1600000),
				},
			},
		},
	},
	domain.IndustryManufacturing: {
		{
			ID:     "manufacturing-quality",
			Domain: domain.DomainDataQuality,
			Text:   "How do you handle quality control data in your manufacturing processes?",
			Weight: standardWeight(1.8),
			Dependencies: []domain.Dependency{
				{QuestionID: "data-quality", RequiredAnswer: 2},
			},
			Options: []domain.Option{
				{
					Value:       1,
					Label:       "Basic",
					Description: "Manual quality control data collection",
					Recommendations: []string{
						"Implement IoT sensors",
						"Develop automated quality monitoring",
						"Create predictive maintenance system",
					},
					EstimatedCost: usd(150000, 300000),
				},
				{
					Value:       4,
					Label:       "Advanced",
					Description: "AI-driven quality control system",
					Recommendations: []string{
						"Implement advanced analytics",
						"Develop real-time optimization",
						"Create digital twin system",
					},
					EstimatedCost: usd(600000, 1200000),
				},
			},
		},
	},
	domain.IndustryRetail: {
		{
			ID:     "retail-customer-data",
			Domain: domain.DomainDataInfrastructure,
			Text:   "How do you manage and utilize customer data for personalization?",
			Weight: standardWeight(1.7),
			Dependencies: []domain.Dependency{
				{QuestionID: "data-storage", RequiredAnswer: 2},
			},
			Options: []domain.Option{
				{
					Value:       1,
					Label:       "Basic",
					Description: "Basic customer data collection",
					Recommendations: []string{
						"Implement customer data platform",
						"Develop personalization engine",
						"Create customer segmentation",
					},
					EstimatedCost: usd(100000, 200000),
				},
				{
					Value:       4,
					Label:       "Advanced",
					Description: "AI-driven personalization system",
					Recommendations: []string{
						"Implement real-time personalization",
						"Develop predictive analytics",
						"Create omnichannel experience",
					},
					EstimatedCost: usd(400000, 800000),
				},
			},
		},
	},
	domain.IndustryTechnology: {
		{
			ID:     "tech-innovation",
			Domain: domain.DomainBusinessStrategy,
			Text:   "How do you incorporate AI innovation in your product development?",
			Weight: standardWeight(2.0),
			Dependencies: []domain.Dependency{
				{QuestionID: "strategic-alignment", RequiredAnswer: 3},
			},
			Options: []domain.Option{
				{
					Value:       1,
					Label:       "Basic",
					Description: "Limited AI integration in products",
					Recommendations: []string{
						"Implement AI feature roadmap",
						"Develop innovation lab",
						"Create AI product strategy",
					},
					EstimatedCost: usd(200000, 400000),
				},
				{
					Value:       4,
					Label:       "Advanced",
					Description: "AI-first product development",
					Recommendations: []string{
						"Implement advanced AI research",
						"Develop product innovation",
						"Create AI ecosystem",
					},
					EstimatedCost: usd(800000, 1600000),
				},
			},
		},
	},
	domain.IndustryOther: {
		{
			ID:     "general-ai-adoption",
			Domain: domain.DomainBusinessStrategy,
			Text:   "How do you approach AI adoption in your industry?",
			Weight: standardWeight(1.5),
			Dependencies: []domain.Dependency{
				{QuestionID: "strategic-alignment", RequiredAnswer: 2},
			},
			Options: []domain.Option{
				{
					Value:       1,
					Label:       "Basic",
					Description: "Exploratory AI adoption",
					Recommendations: []string{
						"Implement use case analysis",
						"Develop adoption roadmap",
						"Create pilot program",
					},
					EstimatedCost: usd(100000, 200000),
				},
				{
					Value:       4,
					Label:       "Advanced",
					Description: "Strategic AI transformation",
					Recommendations: []string{
						"Implement transformation program",
						"Develop industry solutions",
						"Create competitive advantage",
					},
					EstimatedCost: usd(400000, 800000),
				},
			},
		},
	},
}
