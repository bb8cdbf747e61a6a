// Package session holds the mutable state of one assessment run: the
// organization profile, the answers collected so far, the derived question
// list, and the computed result once complete.
//
// A Session is explicitly constructed and owned by its caller; there is no
// package-level state, so parallel sessions never interfere. All mutation
// happens through the defined operations and runs to completion before the
// next caller action; there are no concurrent writers.
package session

import (
	"github.com/alexanderramin/metis/internal/catalog"
	"github.com/alexanderramin/metis/internal/domain"
	"github.com/alexanderramin/metis/internal/scoring"
	"github.com/alexanderramin/metis/internal/selector"
)

// Session drives one assessment: NoProfile → ProfileSet → InProgress →
// Complete, with Reset returning to NoProfile from any state.
type Session struct {
	profile   *domain.OrganizationProfile
	questions []domain.Question
	answers   map[string]int
	index     int
	complete  bool
	result    *domain.AssessmentResult
}

// New returns an empty session in the NoProfile state.
func New() *Session {
	return &Session{answers: make(map[string]int)}
}

// SetProfile validates and records the organization profile, derives the
// initial question list, and discards any answers or result from a prior
// profile.
func (s *Session) SetProfile(p domain.OrganizationProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	profile := p
	s.profile = &profile
	s.answers = make(map[string]int)
	s.questions = selector.Select(profile, nil)
	s.index = 0
	s.complete = false
	s.result = nil
	return nil
}

// Profile returns the active profile, or nil in the NoProfile state.
func (s *Session) Profile() *domain.OrganizationProfile {
	return s.profile
}

// ActiveQuestions returns a copy of the current question list.
func (s *Session) ActiveQuestions() []domain.Question {
	out := make([]domain.Question, len(s.questions))
	for i := range s.questions {
		out[i] = s.questions[i].Clone()
	}
	return out
}

// ActiveQuestion returns the question at the given index, or nil when the
// index is out of range.
func (s *Session) ActiveQuestion(index int) *domain.Question {
	if index < 0 || index >= len(s.questions) {
		return nil
	}
	q := s.questions[index].Clone()
	return &q
}

// Current returns the question at the session pointer, or nil.
func (s *Session) Current() *domain.Question {
	return s.ActiveQuestion(s.index)
}

// Index returns the session pointer.
func (s *Session) Index() int {
	return s.index
}

// Answer records an answer for a currently active question and re-derives
// the question list, which may unlock dependent follow-ups. Questions the
// session has already recorded an answer for are never removed from the
// list, even if the new answer set would re-filter them out. If the list
// still shrinks, the pointer is clamped so Current never runs off the end.
func (s *Session) Answer(questionID string, value int) error {
	if s.profile == nil {
		return ErrNoProfile
	}
	q := s.findActive(questionID)
	if q == nil {
		return ErrUnknownQuestion
	}
	if q.OptionByValue(value) == nil {
		return ErrInvalidAnswerValue
	}

	s.answers[questionID] = value
	s.questions = s.mergeActive(selector.Select(*s.profile, s.answers))
	s.clampIndex()
	return nil
}

// AnswerValue returns the recorded answer for a question id.
func (s *Session) AnswerValue(questionID string) (int, bool) {
	v, ok := s.answers[questionID]
	return v, ok
}

// Answers returns a copy of the recorded answers.
func (s *Session) Answers() map[string]int {
	out := make(map[string]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Advance moves the pointer forward. At the last question with every active
// question answered it transitions to Complete and computes the result.
// Advancing past an unanswered question is allowed (it acts as a skip); at
// the last index with gaps remaining it does nothing, and the caller must
// navigate back to fill them.
func (s *Session) Advance() {
	if s.profile == nil || s.complete || len(s.questions) == 0 {
		return
	}
	atLast := s.index >= len(s.questions)-1
	if atLast && s.allAnswered() {
		s.complete = true
		s.result = scoring.ComputeResult(*s.profile, s.questions, s.answers)
		return
	}
	if !atLast {
		s.index++
	}
}

// Retreat moves the pointer back one question, floored at zero. It never
// changes answers or completion state.
func (s *Session) Retreat() {
	if s.index > 0 {
		s.index--
	}
}

// Reset returns the session to the NoProfile state, discarding profile,
// answers, question list, and result.
func (s *Session) Reset() {
	s.profile = nil
	s.questions = nil
	s.answers = make(map[string]int)
	s.index = 0
	s.complete = false
	s.result = nil
}

// IsComplete reports whether the session reached the Complete state.
func (s *Session) IsComplete() bool {
	return s.complete
}

// Result returns the computed result, or nil until the session completes.
func (s *Session) Result() *domain.AssessmentResult {
	return s.result
}

// Progress returns how many active questions have answers and the size of
// the active list.
func (s *Session) Progress() (answered, total int) {
	for _, q := range s.questions {
		if _, ok := s.answers[q.ID]; ok {
			answered++
		}
	}
	return answered, len(s.questions)
}

// Snapshot captures the durable session state for persistence. The derived
// question list and pointer are reconstructed on restore.
func (s *Session) Snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Answers:    make(map[string]int, len(s.answers)),
		IsComplete: s.complete,
		Result:     s.result,
	}
	if s.profile != nil {
		profile := *s.profile
		snap.Profile = &profile
	}
	for k, v := range s.answers {
		snap.Answers[k] = v
	}
	return snap
}

// Restore rebuilds a session from a snapshot taken earlier. The question
// list is re-derived from the profile and answers (answered questions are
// always retained), and the pointer lands on the first unanswered question.
// The stored result is accepted verbatim.
func Restore(snap domain.Snapshot) (*Session, error) {
	s := New()
	if snap.Profile == nil {
		return s, nil
	}
	if err := s.SetProfile(*snap.Profile); err != nil {
		return nil, err
	}

	s.answers = make(map[string]int, len(snap.Answers))
	for k, v := range snap.Answers {
		s.answers[k] = v
	}
	s.questions = s.mergeActive(selector.Select(*snap.Profile, s.answers))
	s.index = s.firstUnanswered()
	s.complete = snap.IsComplete
	s.result = snap.Result
	return s, nil
}

func (s *Session) findActive(questionID string) *domain.Question {
	for i := range s.questions {
		if s.questions[i].ID == questionID {
			return &s.questions[i]
		}
	}
	return nil
}

// clampIndex keeps the pointer inside the active list. Re-deriving the
// list after a changed gating answer can drop unanswered follow-ups below
// the pointer, so the pointer moves to the new last question.
func (s *Session) clampIndex() {
	if last := len(s.questions) - 1; s.index > last {
		s.index = max(last, 0)
	}
}

func (s *Session) allAnswered() bool {
	for _, q := range s.questions {
		if _, ok := s.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

func (s *Session) firstUnanswered() int {
	for i, q := range s.questions {
		if _, ok := s.answers[q.ID]; !ok {
			return i
		}
	}
	if len(s.questions) == 0 {
		return 0
	}
	return len(s.questions) - 1
}

// mergeActive combines the selector's fresh output with questions that are
// answered but no longer eligible (a changed gating answer can orphan a
// follow-up). Both inputs follow catalog order, so the merge walks the
// catalog pool and keeps a question if the selector kept it or the session
// already answered it.
func (s *Session) mergeActive(selected []domain.Question) []domain.Question {
	selectedByID := make(map[string]*domain.Question, len(selected))
	for i := range selected {
		selectedByID[selected[i].ID] = &selected[i]
	}

	pool := catalog.ForProfile(s.profile.Industry)
	out := make([]domain.Question, 0, len(selected))
	for i := range pool {
		id := pool[i].ID
		if q, ok := selectedByID[id]; ok {
			out = append(out, *q)
			continue
		}
		if _, answered := s.answers[id]; answered {
			retained := pool[i].Clone()
			retained.EffectiveWeight = pool[i].Weight.EffectiveFor(s.profile.Industry, s.profile.CompanySize)
			out = append(out, retained)
		}
	}
	return out
}
