package domain

import "time"

// AssessmentRecord is a completed assessment stored in history.
type AssessmentRecord struct {
	ID          string              `json:"id"`
	Profile     OrganizationProfile `json:"profile"`
	Answers     map[string]int      `json:"answers"`
	Result      AssessmentResult    `json:"result"`
	CompletedAt time.Time           `json:"completedAt"`
}
