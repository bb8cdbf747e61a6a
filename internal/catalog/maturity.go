package catalog

import "github.com/alexanderramin/metis/internal/domain"

// maturityQuestions are escalation follow-ups asked only once an earlier
// gating question scored high enough.
var maturityQuestions = []domain.Question{
	{
		ID:     "advanced-data-integration",
		Domain: domain.DomainDataInfrastructure,
		Text:   "How advanced is your data integration and processing pipeline?",
		Weight: standardWeight(1.8),
		Dependencies: []domain.Dependency{
			{QuestionID: "data-storage", RequiredAnswer: 3},
		},
		Options: []domain.Option{
			{
				Value:       1,
				Label:       "Basic Pipeline",
				Description: "Basic ETL processes with limited automation",
				Recommendations: []string{
					"Implement automated pipelines",
					"Develop data validation",
					"Create monitoring system",
				},
				EstimatedCost: usd(150000, 300000),
			},
			{
				Value:       4,
				Label:       "Advanced Pipeline",
				Description: "Fully automated data pipeline with real-time processing",
				Recommendations: []string{
					"Implement streaming analytics",
					"Develop advanced integration",
					"Create self-healing pipelines",
				},
				EstimatedCost: usd(600000, 1200000),
			},
		},
	},
	{
		ID:     "mlops-practices",
		Domain: domain.DomainTechnicalInfrastructure,
		Text:   "How mature are your MLOps practices and tools?",
		Weight: standardWeight(1.9),
		Dependencies: []domain.Dependency{
			{QuestionID: "technical-infrastructure", RequiredAnswer: 3},
		},
		Options: []domain.Option{
			{
				Value:       1,
				Label:       "Basic MLOps",
				Description: "Manual deployment and monitoring",
				Recommendations: []string{
					"Implement CI/CD for ML",
					"Develop model monitoring",
					"Create automated testing",
				},
				EstimatedCost: usd(200000, 400000),
			},
			{
				Value:       4,
				Label:       "Advanced MLOps",
				Description: "Fully automated ML lifecycle",
				Recommendations: []string{
					"Implement advanced orchestration",
					"Develop automated retraining",
					"Create advanced monitoring",
				},
				EstimatedCost: usd(800000, 1600000),
			},
		},
	},
}
