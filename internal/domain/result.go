package domain

// Benchmarks are fixed placeholder comparison figures. Real anonymized
// benchmark data is out of scope; these constants make that explicit.
type Benchmarks struct {
	IndustryAverage  float64 `json:"industryAverage"`
	PercentileRank   int     `json:"percentileRank"`
	SimilarCompanies float64 `json:"similarCompanies"`
}

// DomainScore is the derived result for one readiness domain.
type DomainScore struct {
	Score           float64         `json:"score"`
	MaxScore        float64         `json:"maxScore"`
	MaturityLevel   MaturityLevel   `json:"maturityLevel"`
	Recommendations []string        `json:"recommendations"`
	Benchmarks      Benchmarks      `json:"benchmarks"`
	Domain          ReadinessDomain `json:"domain"`
}

// ROIProjection holds fixed return-on-investment multipliers.
type ROIProjection struct {
	Optimistic   float64 `json:"optimistic"`
	Conservative float64 `json:"conservative"`
	TimeframeMo  int     `json:"timeframe"`
}

// CostEstimate buckets answer-option cost midpoints into three categories.
// Total is always the sum of the three buckets.
type CostEstimate struct {
	Infrastructure float64       `json:"infrastructure"`
	Training       float64       `json:"training"`
	Implementation float64       `json:"implementation"`
	Total          float64       `json:"total"`
	ROI            ROIProjection `json:"roi"`
}

// Milestone is a fixed timeline entry tagged to a domain.
type Milestone struct {
	Month       int             `json:"month"`
	Description string          `json:"description"`
	Domain      ReadinessDomain `json:"domain"`
}

// ImplementationTimeframe bounds the implementation window in months.
type ImplementationTimeframe struct {
	MinimumMonths int         `json:"minimum"`
	MaximumMonths int         `json:"maximum"`
	Milestones    []Milestone `json:"milestones"`
}

// Recommendation is one prioritized action item in the final report.
type Recommendation struct {
	Domain         ReadinessDomain `json:"domain"`
	Priority       Priority        `json:"priority"`
	Timeframe      Timeframe       `json:"timeframe"`
	Description    string          `json:"description"`
	EstimatedCost  float64         `json:"estimatedCost"`
	ExpectedImpact int             `json:"expectedImpact"`
}

// BenchmarkComparison compares the overall score against placeholder
// industry figures.
type BenchmarkComparison struct {
	IndustryAverage       float64 `json:"industryAverage"`
	PercentileRank        int     `json:"percentileRank"`
	SimilarCompanyAverage float64 `json:"similarCompanyAverage"`
	SimilarCompanySamples int     `json:"similarCompanySamples"`
}

// AssessmentResult is the terminal artifact of a completed session. It is
// computed in one pass and replaced wholesale on re-calculation.
type AssessmentResult struct {
	TotalScore          int                             `json:"totalScore"`
	MaturityLevel       MaturityLevel                   `json:"maturityLevel"`
	DomainScores        map[ReadinessDomain]DomainScore `json:"domainScores"`
	BenchmarkComparison BenchmarkComparison             `json:"benchmarkComparison"`
	EstimatedCosts      CostEstimate                    `json:"estimatedCosts"`
	Timeframe           ImplementationTimeframe         `json:"implementationTimeframe"`
	Recommendations     []Recommendation                `json:"recommendations"`
}
