package search_test

import (
	"testing"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/search"

	"github.com/stretchr/testify/assert"
)

func candidateTextFields(c domain.Candidate) []string {
	return []string{c.FullName(), c.Email}
}

func TestCompose(t *testing.T) {
	candidates := []domain.Candidate{
		{FirstName: "Ana", LastName: "Dupont", Email: "ana@example.com", Status: domain.CandidateStatusAvailable, Skills: []string{"React"}},
		{FirstName: "Leo", LastName: "Martin", Email: "leo@example.com", Status: domain.CandidateStatusHired, Skills: []string{"Go"}},
	}

	t.Run("Should match text AND status conjunctively", func(t *testing.T) {
		got := search.Compose(candidates, "an", candidateTextFields,
			search.Equals("available", func(c domain.Candidate) string { return c.Status }),
		)
		assert.Len(t, got, 1)
		assert.Equal(t, "Ana", got[0].FirstName)
	})

	t.Run("Should return everything when query and filters are unset", func(t *testing.T) {
		got := search.Compose(candidates, "", candidateTextFields,
			search.Equals("", func(c domain.Candidate) string { return c.Status }),
		)
		assert.Len(t, got, 2)
	})

	t.Run("Should be case-insensitive on text fields", func(t *testing.T) {
		got := search.Compose(candidates, "MARTIN", candidateTextFields)
		assert.Len(t, got, 1)
		assert.Equal(t, "Leo", got[0].FirstName)
	})

	t.Run("Should match email as a text field", func(t *testing.T) {
		got := search.Compose(candidates, "leo@", candidateTextFields)
		assert.Len(t, got, 1)
	})

	t.Run("Should filter on skill membership", func(t *testing.T) {
		got := search.Compose(candidates, "", candidateTextFields,
			search.Contains("Go", func(c domain.Candidate) []string { return c.Skills }),
		)
		assert.Len(t, got, 1)
		assert.Equal(t, "Leo", got[0].FirstName)
	})

	t.Run("Should preserve source order", func(t *testing.T) {
		got := search.Compose(candidates, "example.com", candidateTextFields)
		assert.Len(t, got, 2)
		assert.Equal(t, "Ana", got[0].FirstName)
		assert.Equal(t, "Leo", got[1].FirstName)
	})
}
