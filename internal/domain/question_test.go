package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestion() Question {
	return Question{
		ID:     "data-storage",
		Domain: DomainDataInfrastructure,
		Text:   "How do you currently store and manage your data?",
		Weight: WeightTable{
			Base:        1.5,
			Industry:    map[Industry]float64{IndustryTechnology: 1.3, IndustryHealthcare: 1.2},
			CompanySize: map[CompanySize]float64{SizeSmall: 0.9, SizeEnterprise: 1.2},
		},
		Options: []Option{
			{Value: 1, Label: "Basic", Recommendations: []string{"Implement proper database system"},
				EstimatedCost: &CostRange{Min: 50000, Max: 100000, Currency: "USD"}},
			{Value: 4, Label: "Optimized"},
		},
		Dependencies: []Dependency{{QuestionID: "prior", RequiredAnswer: 3}},
	}
}

func TestWeightTable_EffectiveFor(t *testing.T) {
	q := sampleQuestion()

	assert.InDelta(t, 1.5*1.3*1.2, q.Weight.EffectiveFor(IndustryTechnology, SizeEnterprise), 1e-9)
	assert.InDelta(t, 1.5*1.2*0.9, q.Weight.EffectiveFor(IndustryHealthcare, SizeSmall), 1e-9)

	// Missing multipliers fall back to 1.
	assert.InDelta(t, 1.5*0.9, q.Weight.EffectiveFor(IndustryRetail, SizeSmall), 1e-9)
}

func TestQuestion_OptionByValue(t *testing.T) {
	q := sampleQuestion()

	opt := q.OptionByValue(4)
	require.NotNil(t, opt)
	assert.Equal(t, "Optimized", opt.Label)

	assert.Nil(t, q.OptionByValue(2))
}

func TestQuestion_AllowLists(t *testing.T) {
	q := sampleQuestion()
	assert.True(t, q.AllowsIndustry(IndustryFinance), "empty allow-list admits everyone")

	q.Industries = []Industry{IndustryHealthcare}
	q.CompanySizes = []CompanySize{SizeSmall, SizeMedium}
	assert.True(t, q.AllowsIndustry(IndustryHealthcare))
	assert.False(t, q.AllowsIndustry(IndustryFinance))
	assert.True(t, q.AllowsCompanySize(SizeMedium))
	assert.False(t, q.AllowsCompanySize(SizeEnterprise))
}

func TestQuestion_CloneIsDeep(t *testing.T) {
	q := sampleQuestion()
	clone := q.Clone()

	clone.Weight.Industry[IndustryTechnology] = 99
	clone.Options[0].Recommendations[0] = "changed"
	clone.Options[0].EstimatedCost.Min = 1
	clone.Dependencies[0].RequiredAnswer = 4
	clone.EffectiveWeight = 12.5

	assert.Equal(t, 1.3, q.Weight.Industry[IndustryTechnology])
	assert.Equal(t, "Implement proper database system", q.Options[0].Recommendations[0])
	assert.Equal(t, float64(50000), q.Options[0].EstimatedCost.Min)
	assert.Equal(t, 3, q.Dependencies[0].RequiredAnswer)
	assert.Zero(t, q.EffectiveWeight)
}

func TestCostRange_Midpoint(t *testing.T) {
	c := CostRange{Min: 100, Max: 300}
	assert.Equal(t, float64(200), c.Midpoint())
}
