package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/metis/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHumanDate(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "Today", HumanDate(now))
	assert.Equal(t, "Yesterday", HumanDate(now.AddDate(0, 0, -1)))
	assert.Equal(t, "Mar 15, 2026", HumanDate(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)))
}

func TestTruncID(t *testing.T) {
	out := TruncID("a1b2c3d4-e5f6-7890-abcd-ef1234567890")
	assert.Contains(t, out, "a1b2c3d4")
	assert.NotContains(t, out, "e5f6")

	short := TruncID("ab12")
	assert.Contains(t, short, "ab12")
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{150000, "$150,000"},
		{1234567, "$1,234,567"},
		{2499.6, "$2,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(tt.in))
	}
}

func TestDomainLabel(t *testing.T) {
	assert.Equal(t, "Data Infrastructure", DomainLabel(domain.DomainDataInfrastructure))
	assert.Equal(t, "Ethics Governance", DomainLabel(domain.DomainEthicsGovernance))
	assert.Equal(t, "Business Strategy", DomainLabel(domain.DomainBusinessStrategy))
}

func TestRenderBox_IncludesTitleAndContent(t *testing.T) {
	out := RenderBox("Report", "hello world")
	assert.Contains(t, out, "REPORT")
	assert.Contains(t, out, "hello world")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Score"},
		[][]string{
			{"abc", "97"},
			{"defghi", "4"},
		})
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "defghi")
}
