package domain

type Industry string

const (
	IndustryHealthcare    Industry = "healthcare"
	IndustryFinance       Industry = "finance"
	IndustryManufacturing Industry = "manufacturing"
	IndustryRetail        Industry = "retail"
	IndustryTechnology    Industry = "technology"
	IndustryOther         Industry = "other"
)

// ValidIndustries is the canonical set of accepted industry strings.
var ValidIndustries = map[Industry]bool{
	IndustryHealthcare: true, IndustryFinance: true, IndustryManufacturing: true,
	IndustryRetail: true, IndustryTechnology: true, IndustryOther: true,
}

type CompanySize string

const (
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeLarge      CompanySize = "large"
	SizeEnterprise CompanySize = "enterprise"
)

// ValidCompanySizes is the canonical set of accepted company size strings.
var ValidCompanySizes = map[CompanySize]bool{
	SizeSmall: true, SizeMedium: true, SizeLarge: true, SizeEnterprise: true,
}

// ReadinessDomain is one dimension of AI readiness. Questions are grouped by
// domain and results report one sub-score per domain.
type ReadinessDomain string

const (
	DomainDataInfrastructure      ReadinessDomain = "data_infrastructure"
	DomainTalentCapability        ReadinessDomain = "talent_capability"
	DomainEthicsGovernance        ReadinessDomain = "ethics_governance"
	DomainTechnicalInfrastructure ReadinessDomain = "technical_infrastructure"
	DomainBusinessStrategy        ReadinessDomain = "business_strategy"
	DomainDataQuality             ReadinessDomain = "data_quality"
	DomainSecurityCompliance      ReadinessDomain = "security_compliance"
)

// AllDomains lists every readiness domain in reporting order.
var AllDomains = []ReadinessDomain{
	DomainDataInfrastructure,
	DomainTalentCapability,
	DomainEthicsGovernance,
	DomainTechnicalInfrastructure,
	DomainBusinessStrategy,
	DomainDataQuality,
	DomainSecurityCompliance,
}

type MaturityLevel string

const (
	MaturityInitial    MaturityLevel = "initial"
	MaturityDeveloping MaturityLevel = "developing"
	MaturityDefined    MaturityLevel = "defined"
	MaturityManaged    MaturityLevel = "managed"
	MaturityOptimizing MaturityLevel = "optimizing"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Timeframe string

const (
	TimeframeShort  Timeframe = "short"
	TimeframeMedium Timeframe = "medium"
	TimeframeLong   Timeframe = "long"
)
