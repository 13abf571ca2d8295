package estimation_test

import (
	"math/rand"
	"testing"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/estimation"

	"github.com/stretchr/testify/assert"
)

func newService(seed int64) *estimation.Service {
	return estimation.NewService(rand.New(rand.NewSource(seed)))
}

func TestScoreJob(t *testing.T) {
	t.Run("Should clamp a fully-stacked posting to 100 regardless of jitter", func(t *testing.T) {
		job := &domain.JobPosting{
			Description:  string(make([]byte, 250)),
			Requirements: []string{"a", "b", "c"},
			Benefits:     []string{"Télétravail partiel", "b", "c"},
			Skills:       []string{"Go", "SQL", "Docker", "React"},
			Salary:       "45-55k",
		}
		// Deterministic floor is 70+10+10+10+5+5+5 = 115; even the worst
		// jitter (-5) stays above the 100 cap.
		for seed := int64(0); seed < 20; seed++ {
			assert.Equal(t, 100, newService(seed).ScoreJob(job))
		}
	})

	t.Run("Should score within bounds for a bare posting", func(t *testing.T) {
		job := &domain.JobPosting{Title: "Poste"}
		for seed := int64(0); seed < 50; seed++ {
			score := newService(seed).ScoreJob(job)
			assert.GreaterOrEqual(t, score, 60)
			assert.LessOrEqual(t, score, 100)
		}
	})

	t.Run("Should be deterministic for a fixed seed", func(t *testing.T) {
		job := &domain.JobPosting{Description: "desc", Salary: "40k"}
		assert.Equal(t, newService(42).ScoreJob(job), newService(42).ScoreJob(job))
	})

	t.Run("Should detect télétravail benefit case-insensitively", func(t *testing.T) {
		with := &domain.JobPosting{Benefits: []string{"TÉLÉTRAVAIL total"}}
		without := &domain.JobPosting{Benefits: []string{"autre"}}
		// Same seed, same jitter; only the benefit bonus differs.
		assert.Equal(t, newService(7).ScoreJob(with)-newService(7).ScoreJob(without), 5)
	})
}

func TestEstimateMarketValue(t *testing.T) {
	t.Run("Should apply the skill and experience bonuses", func(t *testing.T) {
		c := &domain.Candidate{
			FirstName: "Ana",
			LastName:  "Dupont",
			Skills:    []string{"A", "B", "C"},
			CVAnalysis: &domain.CVAnalysis{
				Experience: []domain.ExperienceEntry{{Title: "x"}, {Title: "y"}},
			},
		}
		mv, analysis := newService(1).EstimateMarketValue(c)
		assert.Equal(t, 43000, mv.Min)
		assert.Equal(t, 53000, mv.Max)
		assert.Equal(t, "EUR", mv.Currency)
		assert.Contains(t, analysis, "Ana Dupont")
		assert.Contains(t, analysis, "A, B, C")
	})

	t.Run("Should handle a candidate without CV analysis", func(t *testing.T) {
		c := &domain.Candidate{FirstName: "Leo", LastName: "Martin", Skills: []string{"Go"}}
		mv, _ := newService(1).EstimateMarketValue(c)
		assert.Equal(t, 41000, mv.Min)
		assert.Equal(t, 41000, mv.Max)
	})

	t.Run("Should mention only the first three skills", func(t *testing.T) {
		c := &domain.Candidate{
			FirstName: "Ana", LastName: "Dupont",
			Skills: []string{"Go", "SQL", "Docker", "React"},
		}
		_, analysis := newService(1).EstimateMarketValue(c)
		assert.Contains(t, analysis, "Go, SQL, Docker")
		assert.NotContains(t, analysis, "React")
	})
}

func TestGeneratePosting(t *testing.T) {
	t.Run("Should classify by keyword with developer priority", func(t *testing.T) {
		// "data" also appears, but developer keywords win in priority order.
		p := newService(1).GeneratePosting("Développeur Backend Data", "", "Paris", "")
		assert.Equal(t, "developer", p.Category)
	})

	t.Run("Should fall back to the general category", func(t *testing.T) {
		p := newService(1).GeneratePosting("Office Manager", "", "", "")
		assert.Equal(t, "general", p.Category)
	})

	t.Run("Should append leadership requirements for senior roles", func(t *testing.T) {
		junior := newService(1).GeneratePosting("Développeur Go", "2 ans", "", "")
		senior := newService(1).GeneratePosting("Développeur Go", "Senior (5+ ans)", "", "")
		assert.Equal(t, len(junior.Requirements)+2, len(senior.Requirements))
		assert.Contains(t, senior.Requirements[len(senior.Requirements)-2], "mentorat")
	})

	t.Run("Should interpolate the title into the description", func(t *testing.T) {
		p := newService(1).GeneratePosting("UX Designer", "", "", "")
		assert.Contains(t, p.Description, "UX Designer")
	})

	t.Run("Should cap benefits at 7 and keep the 4 base items first", func(t *testing.T) {
		for seed := int64(0); seed < 30; seed++ {
			p := newService(seed).GeneratePosting("Développeur Go", "Senior", "Paris", "50k")
			// 4 base items + at least 3 sampled extras always fills the cap
			assert.Len(t, p.Benefits, 7)
			assert.Equal(t, "Mutuelle d'entreprise prise en charge", p.Benefits[0])
		}
	})

	t.Run("Should emit the fixed per-category skill list", func(t *testing.T) {
		p := newService(1).GeneratePosting("DevOps Engineer", "", "", "")
		assert.Contains(t, p.Skills, "Kubernetes")
	})
}
