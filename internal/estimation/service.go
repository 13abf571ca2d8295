// Package estimation implements the scoring and generation heuristics behind
// the dashboard's "smart" features: job attractiveness scoring, candidate
// market-value estimation and posting generation. All randomness flows
// through an injected source so results are reproducible in tests.
package estimation

import (
	"fmt"
	"math/rand"
	"strings"

	"go-talent-backend/internal/domain"
)

const (
	scoreBase = 70
	scoreMin  = 60
	scoreMax  = 100

	marketValueBase  = 40000
	skillBonus       = 1000
	experienceBonus  = 5000
	marketCurrency   = "EUR"
	maxBenefits      = 7
	maxRequirements  = 6
	baseBenefitCount = 4
)

// Service computes derived scores and generates posting drafts.
type Service struct {
	rng *rand.Rand
}

// NewService builds a service around the given random source.
func NewService(rng *rand.Rand) *Service {
	return &Service{rng: rng}
}

// ScoreJob rates a posting's attractiveness on a 60–100 scale. The score is
// computed once at creation time and stored; edits never recompute it.
func (s *Service) ScoreJob(job *domain.JobPosting) int {
	score := scoreBase

	if len(job.Description) > 200 {
		score += 10
	}
	if len(job.Requirements) >= 3 {
		score += 10
	}
	if len(job.Benefits) >= 3 {
		score += 10
	}
	if len(job.Skills) >= 4 {
		score += 5
	}
	if strings.TrimSpace(job.Salary) != "" {
		score += 5
	}
	if anyContainsFold(job.Benefits, "télétravail") {
		score += 5
	}
	if anyContainsFold(job.Benefits, "formation") {
		score += 3
	}

	// Uniform jitter in [-5, +4]
	score += s.rng.Intn(10) - 5

	if score < scoreMin {
		score = scoreMin
	}
	if score > scoreMax {
		score = scoreMax
	}
	return score
}

// EstimateMarketValue derives a salary range from skill and experience counts:
// min = 40000 + skills*1000, max = min + experience*5000.
func (s *Service) EstimateMarketValue(c *domain.Candidate) (domain.MarketValue, string) {
	skillCount := len(c.Skills)
	expCount := 0
	if c.CVAnalysis != nil {
		expCount = len(c.CVAnalysis.Experience)
	}

	min := marketValueBase + skillCount*skillBonus
	max := min + expCount*experienceBonus

	mv := domain.MarketValue{Min: min, Max: max, Currency: marketCurrency}

	highlighted := c.Skills
	if len(highlighted) > 3 {
		highlighted = highlighted[:3]
	}
	analysis := fmt.Sprintf(
		"Profil de %s : %d compétence(s) identifiée(s), dont %s. "+
			"Fourchette de rémunération estimée entre %d et %d %s selon le marché actuel.",
		c.FullName(), skillCount, strings.Join(highlighted, ", "), mv.Min, mv.Max, mv.Currency,
	)
	return mv, analysis
}

// GeneratePosting builds a ready-to-edit posting draft from the job title,
// experience label, location and salary. The title is classified into a
// category by keyword matching (first match wins, in fixed priority order).
func (s *Service) GeneratePosting(title, experience, location, salary string) *domain.GeneratedPosting {
	cat := classify(title)
	tpl := categoryTemplates[cat]

	requirements := append([]string(nil), tpl.requirements...)
	if len(requirements) > maxRequirements {
		requirements = requirements[:maxRequirements]
	}
	if isSenior(experience) {
		requirements = append(requirements, leadershipRequirements...)
	}

	benefits := s.pickBenefits(location, salary)

	return &domain.GeneratedPosting{
		Category:     cat,
		Description:  fmt.Sprintf(tpl.description, title),
		Requirements: requirements,
		Benefits:     benefits,
		Skills:       append([]string(nil), tpl.skills...),
	}
}

// pickBenefits takes the fixed base items, then samples 3–4 extras from the
// pool, applying location and salary heuristics, capped at 7 total.
func (s *Service) pickBenefits(location, salary string) []string {
	benefits := append([]string(nil), baseBenefits...)

	pool := append([]string(nil), benefitPool...)
	loc := strings.ToLower(location)
	if strings.Contains(loc, "paris") {
		pool = append(pool, "Remboursement du pass Navigo à 100%")
	}
	if strings.Contains(loc, "remote") || strings.Contains(loc, "télétravail") {
		pool = append(pool, "Télétravail à 100% possible")
	}
	if strings.TrimSpace(salary) != "" {
		pool = append(pool, "Prime annuelle sur objectifs")
	}

	extras := 3 + s.rng.Intn(2) // 3 or 4
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if extras > len(pool) {
		extras = len(pool)
	}
	benefits = append(benefits, pool[:extras]...)

	if len(benefits) > maxBenefits {
		benefits = benefits[:maxBenefits]
	}
	return benefits
}

// classify maps a job title to a category. Priority order is fixed; the
// first category with a keyword hit wins.
func classify(title string) string {
	lower := strings.ToLower(title)
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return CategoryGeneral
}

// isSenior detects seniority markers in the experience label.
func isSenior(experience string) bool {
	lower := strings.ToLower(experience)
	return strings.Contains(lower, "senior") ||
		strings.Contains(lower, "5+") ||
		strings.Contains(lower, "lead")
}

func anyContainsFold(items []string, sub string) bool {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), sub) {
			return true
		}
	}
	return false
}
