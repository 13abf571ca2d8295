package parse_test

import (
	"testing"

	"go-talent-backend/pkg/parse"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	t.Run("Should trim segments and drop empties", func(t *testing.T) {
		assert.Equal(t, []string{"React", "Node.js"}, parse.List("React, , Node.js ,"))
	})

	t.Run("Should preserve order", func(t *testing.T) {
		assert.Equal(t, []string{"Go", "SQL", "Docker"}, parse.List("Go,SQL,Docker"))
	})

	t.Run("Should return empty slice for blank input", func(t *testing.T) {
		assert.Empty(t, parse.List("  "))
		assert.Empty(t, parse.List(""))
	})
}

func TestLines(t *testing.T) {
	t.Run("Should split on newlines and keep order", func(t *testing.T) {
		in := "3 ans d'expérience\n\n  Maîtrise de Go  \nAnglais courant"
		assert.Equal(t, []string{"3 ans d'expérience", "Maîtrise de Go", "Anglais courant"}, parse.Lines(in))
	})

	t.Run("Should handle CRLF input", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, parse.Lines("a\r\nb\r\n"))
	})
}
