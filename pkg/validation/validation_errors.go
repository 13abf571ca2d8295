package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the French labels shown in forms.
var FieldLabels = map[string]string{
	"FirstName":      "Prénom",
	"LastName":       "Nom",
	"Email":          "Email",
	"Phone":          "Téléphone",
	"Skills":         "Compétences",
	"Availability":   "Disponibilité",
	"Status":         "Statut",
	"Title":          "Titre",
	"Department":     "Département",
	"Location":       "Lieu",
	"Type":           "Type de contrat",
	"Experience":     "Expérience",
	"Salary":         "Salaire",
	"Description":    "Description",
	"Requirements":   "Prérequis",
	"Benefits":       "Avantages",
	"CandidateID":    "Candidat",
	"Position":       "Poste",
	"StartDate":      "Date de début",
	"EndDate":        "Date de fin",
	"Amount":         "Montant",
	"Currency":       "Devise",
	"Period":         "Périodicité",
	"ExpiryDate":     "Date d'expiration",
	"CandidateEmail": "Email du candidat",
	"CandidateName":  "Nom du candidat",
	"InterviewDate":  "Date de l'entretien",
	"InterviewTime":  "Heure de l'entretien",
}

// FieldErrors converts validator.ValidationErrors into per-field messages
// keyed by the JSON-ish field name, so forms can highlight each input.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = err.Error()
		return out
	}

	for _, e := range validationErrors {
		out[e.Field()] = formatSingleError(e)
	}
	return out
}

// formatSingleError formats a single validation error to a user-facing message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s : champ obligatoire", label)
	case "min":
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s : au moins %s élément(s) requis", label, e.Param())
		}
		return fmt.Sprintf("%s : minimum %s caractères", label, e.Param())
	case "max":
		return fmt.Sprintf("%s : maximum %s caractères", label, e.Param())
	case "len":
		return fmt.Sprintf("%s : doit faire exactement %s caractères", label, e.Param())
	case "email", "email_shape":
		return fmt.Sprintf("%s : format d'email invalide", label)
	case "valid_phone":
		return fmt.Sprintf("%s : numéro de téléphone invalide", label)
	case "oneof":
		return fmt.Sprintf("%s : valeur non autorisée (attendu : %s)", label, e.Param())
	case "gt":
		return fmt.Sprintf("%s : doit être supérieur à %s", label, e.Param())
	case "url":
		return fmt.Sprintf("%s : URL invalide", label)
	default:
		return fmt.Sprintf("%s : validation échouée (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-facing label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
