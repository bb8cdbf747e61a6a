package catalog

import "github.com/alexanderramin/metis/internal/domain"

// standardMultipliers is the shared weight-adjustment table applied to every
// catalog question. Regulated and tech-forward industries weigh higher;
// larger organizations weigh higher.
var standardMultipliers = struct {
	industry map[domain.Industry]float64
	size     map[domain.CompanySize]float64
}{
	industry: map[domain.Industry]float64{
		domain.IndustryHealthcare:    1.2,
		domain.IndustryFinance:       1.2,
		domain.IndustryManufacturing: 1.1,
		domain.IndustryRetail:        1.0,
		domain.IndustryTechnology:    1.3,
		domain.IndustryOther:         1.0,
	},
	size: map[domain.CompanySize]float64{
		domain.SizeSmall:      0.9,
		domain.SizeMedium:     1.0,
		domain.SizeLarge:      1.1,
		domain.SizeEnterprise: 1.2,
	},
}

func standardWeight(base float64) domain.WeightTable {
	return domain.WeightTable{
		Base:        base,
		Industry:    standardMultipliers.industry,
		CompanySize: standardMultipliers.size,
	}
}

func usd(min, max float64) *domain.CostRange {
	return &domain.CostRange{Min: min, Max: max, Currency: "USD"}
}

// baseQuestions are asked of every organization regardless of profile.
var baseQuestions = []domain.Question{
	{
		ID:     "data-storage",
		Domain: domain.DomainDataInfrastructure,
		Text:   "How do you currently store and manage your data?",
		Weight: standardWeight(1.5),
		Options: []domain.Option{
			{
				Value:       1,
				Label:       "Basic",
				Description: "Data stored in basic files or simple databases",
				Recommendations: []string{
					"Implement proper database system",
					"Develop data management strategy",
					"Create backup procedures",
				},
				EstimatedCost: usd(50000, 100000),
			},
			{
				Value:       2,
				Label:       "Structured",
				Description: "Organized databases with basic management",
				Recommendations: []string{
					"Implement data warehouse",
					"Develop data governance",
					"Create data catalog",
				},
				EstimatedCost: usd(100000, 200000),
			},
			{
				Value:       3,
				Label:       "Advanced",
				Description: "Data warehouse with governance",
				Recommendations: []string{
					"Implement data lake",
					"Develop advanced analytics",
					"Create data quality framework",
				},
				EstimatedCost: usd(200000, 400000),
			},
			{
				Value:       4,
				Label:       "Optimized",
				Description: "Modern data lake with advanced management",
				Recommendations: []string{
					"Implement AI-driven management",
					"Develop real-time processing",
					"Create automated governance",
				},
				EstimatedCost: usd(400000, 800000),
			},
		},
	},
	{
		ID:     "strategic-alignment",
		Domain: domain.DomainBusinessStrategy,
		Text:   "How well is AI adoption aligned with your organizational strategy?",
		Weight: standardWeight(1.8),
		Options: []domain.Option{
			{
				Value:       1,
				Label:       "No Alignment",
				Description: "No clear connection between AI initiatives and business strategy",
				Recommendations: []string{
					"Develop AI strategy roadmap",
					"Identify key business objectives for AI implementation",
					"Create AI governance framework",
				},
				EstimatedCost: usd(30000, 80000),
			},
			{
				Value:       2,
				Label:       "Partial Alignment",
				Description: "Some AI initiatives aligned with business goals but lacking comprehensive strategy",
				Recommendations: []string{
					"Strengthen alignment between AI and business objectives",
					"Develop KPIs for AI initiatives",
					"Create change management plan",
				},
				EstimatedCost: usd(50000, 120000),
			},
			{
				Value:       3,
				Label:       "Strong Alignment",
				Description: "Clear alignment between AI strategy and organizational objectives",
				Recommendations: []string{
					"Optimize AI governance",
					"Scale successful AI initiatives",
					"Develop AI innovation pipeline",
				},
				EstimatedCost: usd(100000, 250000),
			},
			{
				Value:       4,
				Label:       "Embedded",
				Description: "AI strategy drives the business strategy and is reviewed continuously",
				Recommendations: []string{
					"Institutionalize AI portfolio reviews",
					"Expand AI-driven business models",
					"Benchmark strategy against industry leaders",
				},
				EstimatedCost: usd(200000, 500000),
			},
		},
	},
	{
		ID:     "data-quality",
		Domain: domain.DomainDataQuality,
		Text:   "How would you rate the quality and accessibility of your data for AI applications?",
		Weight: standardWeight(1.7),
		Options: []domain.Option{
			{
				Value:       1,
				Label:       "Basic",
				Description: "Unstructured data with quality issues and limited accessibility",
				Recommendations: []string{
					"Implement data quality framework",
					"Establish data cleaning procedures",
					"Create data accessibility standards",
				},
				EstimatedCost: usd(40000, 90000),
			},
			{
				Value:       2,
				Label:       "Intermediate",
				Description: "Partially structured data with some quality controls",
				Recommendations: []string{
					"Enhance data validation processes",
					"Implement automated data quality checks",
					"Develop data governance policies",
				},
				EstimatedCost: usd(70000, 150000),
			},
			{
				Value:       3,
				Label:       "Advanced",
				Description: "High-quality, well-structured data with robust accessibility",
				Recommendations: []string{
					"Implement advanced data quality monitoring",
					"Develop real-time data processing capabilities",
					"Establish data quality metrics",
				},
				EstimatedCost: usd(120000, 300000),
			},
			{
				Value:       4,
				Label:       "Continuous",
				Description: "Automated quality monitoring with self-service data access",
				Recommendations: []string{
					"Automate quality remediation",
					"Expand data observability coverage",
					"Publish data quality SLAs",
				},
				EstimatedCost: usd(250000, 600000),
			},
		},
	},
	{
		ID:     "technical-infrastructure",
		Domain: domain.DomainTechnicalInfrastructure,
		Text:   "What is the state of your technical infrastructure for AI implementation?",
		Weight: standardWeight(1.6),
		Options: []domain.Option{
			{
				Value:       1,
				Label:       "Basic",
				Description: "Limited computing resources and basic IT infrastructure",
				Recommendations: []string{
					"Assess cloud computing needs",
					"Upgrade hardware infrastructure",
					"Implement scalable architecture",
				},
				EstimatedCost: usd(100000, 250000),
			},
			{
				Value:       2,
				Label:       "Moderate",
				Description: "Some cloud resources and modern infrastructure components",
				Recommendations: []string{
					"Optimize cloud resource utilization",
					"Implement containerization",
					"Enhance security measures",
				},
				EstimatedCost: usd(150000, 350000),
			},
			{
				Value:       3,
				Label:       "Advanced",
				Description: "Robust cloud infrastructure with modern AI-ready components",
				Recommendations: []string{
					"Implement advanced monitoring",
					"Optimize cost management",
					"Enhance disaster recovery",
				},
				EstimatedCost: usd(200000, 500000),
			},
			{
				Value:       4,
				Label:       "Elastic",
				Description: "Fully elastic, AI-optimized platform with GPU capacity on demand",
				Recommendations: []string{
					"Adopt workload-aware autoscaling",
					"Implement multi-region resilience",
					"Optimize accelerator utilization",
				},
				EstimatedCost: usd(400000, 900000),
			},
		},
	},
	{
		ID:     "talent-readiness",
		Domain: domain.DomainTalentCapability,
		Text:   "How would you assess your organization's AI talent and skills readiness?",
		Weight: standardWeight(1.7),
		Options: []domain.Option{
			{
				Value:       1,
				Label:       "Limited",
				Description: "Few or no staff with AI/ML expertise",
				Recommendations: []string{
					"Develop AI training program",
					"Create hiring strategy for AI talent",
					"Establish partnerships with AI experts",
				},
				EstimatedCost: usd(80000, 200000),
			},
			{
				Value:       2,
				Label:       "Developing",
				Description: "Some AI expertise but gaps in key areas",
				Recommendations: []string{
					"Expand internal AI training",
					"Develop AI career paths",
					"Create knowledge sharing programs",
				},
				EstimatedCost: usd(150000, 300000),
			},
			{
				Value:       3,
				Label:       "Strong",
				Description: "Robust AI expertise across relevant areas",
				Recommendations: []string{
					"Implement advanced AI training",
					"Develop AI innovation programs",
					"Create AI centers of excellence",
				},
				EstimatedCost: usd(200000, 450000),
			},
			{
				Value:       4,
				Label:       "Leading",
				Description: "Deep AI expertise with active research and community presence",
				Recommendations: []string{
					"Fund applied AI research",
					"Rotate experts through business units",
					"Build external talent pipelines",
				},
				EstimatedCost: usd(350000, 700000),
			},
		},
	},
	{
		ID:     "process-maturity",
		Domain: domain.DomainEthicsGovernance,
		Text:   "How mature are your organizational processes for AI implementation?",
		Weight: standardWeight(1.5),
		Options: []domain.Option{
			{
				Value:       1,
				Label:       "Ad-hoc",
				Description: "No standardized processes for AI implementation",
				Recommendations: []string{
					"Develop AI implementation framework",
					"Create process documentation",
					"Establish quality controls",
				},
				EstimatedCost: usd(40000, 100000),
			},
			{
				Value:       2,
				Label:       "Defined",
				Description: "Basic processes defined but not fully implemented",
				Recommendations: []string{
					"Optimize existing processes",
					"Implement monitoring systems",
					"Develop feedback mechanisms",
				},
				EstimatedCost: usd(70000, 150000),
			},
			{
				Value:       3,
				Label:       "Optimized",
				Description: "Well-defined and continuously improved processes",
				Recommendations: []string{
					"Implement advanced process automation",
					"Develop predictive analytics",
					"Create innovation frameworks",
				},
				EstimatedCost: usd(100000, 200000),
			},
			{
				Value:       4,
				Label:       "Self-improving",
				Description: "Measured, automated processes with closed-loop improvement",
				Recommendations: []string{
					"Automate process compliance checks",
					"Instrument end-to-end delivery metrics",
					"Share process playbooks across teams",
				},
				EstimatedCost: usd(150000, 350000),
			},
		},
	},
	{
		ID:     "ethical-governance",
		Domain: domain.DomainEthicsGovernance,
		Text:   "How well established are your AI ethics and governance frameworks?",
		Weight: standardWeight(1.6),
		Options: []domain.Option{
			{
				Value:       1,
				Label:       "Initial",
				Description: "No formal AI ethics or governance framework",
				Recommendations: []string{
					"Develop AI ethics guidelines",
					"Create governance structure",
					"Implement oversight mechanisms",
				},
				EstimatedCost: usd(50000, 120000),
			},
			{
				Value:       2,
				Label:       "Developing",
				Description: "Basic ethics guidelines and governance structure",
				Recommendations: []string{
					"Enhance ethics framework",
					"Implement monitoring tools",
					"Develop stakeholder engagement",
				},
				EstimatedCost: usd(80000, 180000),
			},
			{
				Value:       3,
				Label:       "Mature",
				Description: "Comprehensive ethics and governance framework",
				Recommendations: []string{
					"Optimize governance processes",
					"Implement advanced monitoring",
					"Develop industry leadership",
				},
				EstimatedCost: usd(150000, 300000),
			},
			{
				Value:       4,
				Label:       "Exemplary",
				Description: "Audited governance with board-level accountability",
				Recommendations: []string{
					"Publish transparency reports",
					"Establish independent review board",
					"Contribute to industry standards",
				},
				EstimatedCost: usd(250000, 500000),
			},
		},
	},
	{
		ID:     "change-management",
		Domain: domain.DomainTalentCapability,
		Text:   "How effective is your organization's change management for AI adoption?",
		Weight: standardWeight(1.5),
		Options: []domain.Option{
			{
				Value:       1,
				Label:       "Basic",
				Description: "Limited change management capabilities",
				Recommendations: []string{
					"Develop change management strategy",
					"Create communication plan",
					"Implement training programs",
				},
				EstimatedCost: usd(40000, 100000),
			},
			{
				Value:       2,
				Label:       "Structured",
				Description: "Formal change management processes in place",
				Recommendations: []string{
					"Enhance stakeholder engagement",
					"Develop metrics for success",
					"Create feedback mechanisms",
				},
				EstimatedCost: usd(70000, 150000),
			},
			{
				Value:       3,
				Label:       "Advanced",
				Description: "Comprehensive change management framework",
				Recommendations: []string{
					"Optimize change processes",
					"Implement advanced analytics",
					"Develop leadership programs",
				},
				EstimatedCost: usd(100000, 200000),
			},
			{
				Value:       4,
				Label:       "Embedded",
				Description: "Change capability embedded in every AI initiative",
				Recommendations: []string{
					"Scale champions network",
					"Measure adoption continuously",
					"Integrate change planning into delivery",
				},
				EstimatedCost: usd(150000, 300000),
			},
		},
	},
}
