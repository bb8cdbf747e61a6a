package domain

// Snapshot is the serializable state of a session, enough to resume it.
// The derived question list and pointer are reconstructed on restore, so
// only the durable fields are carried.
type Snapshot struct {
	Profile    *OrganizationProfile `json:"profile"`
	Answers    map[string]int       `json:"answers"`
	IsComplete bool                 `json:"isComplete"`
	Result     *AssessmentResult    `json:"result"`
}
