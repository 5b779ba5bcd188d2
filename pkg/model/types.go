package model

import "fmt"

// constantes pour les modes de recherche de styles
type SearchType string

const (
	SearchByFont       SearchType = "font_name"
	SearchMostFrequent SearchType = "most_frequent"
	SearchAllStyles    SearchType = "all_styles"
)

// du mode en chaine à la constante SearchType, retourne une erreur si mode inconnu
func ParseSearchType(s string) (SearchType, error) {
	switch s {
	case "font_name":
		return SearchByFont, nil
	case "most_frequent":
		return SearchMostFrequent, nil
	case "all_styles":
		return SearchAllStyles, nil
	default:
		return "", fmt.Errorf("mode de recherche inconnu : %s", s)
	}
}

func (s SearchType) String() string {
	return string(s)
}

// constantes pour les modes de remplacement
type ReplaceType string

const (
	ReplaceFontName   ReplaceType = "font_name"
	ReplaceEverything ReplaceType = "everything"
)

func ParseReplaceType(s string) (ReplaceType, error) {
	switch s {
	case "font_name":
		return ReplaceFontName, nil
	case "everything":
		return ReplaceEverything, nil
	default:
		return "", fmt.Errorf("mode de remplacement inconnu : %s", s)
	}
}

func (r ReplaceType) String() string {
	return string(r)
}

// Jetons natifs du format pour les bascules bold/italic/underline/strikeout.
// Ce sont des chaînes, pas des bool : le moteur de remplacement les écrit
// tels quels dans le champ, sans traduction.
const (
	ToggleOn  = "1"
	ToggleOff = "0"
)

// ParseToggle accepte les saisies usuelles oui/non (fr/en) et la chaîne vide
// (= ignorer le champ). Retourne le jeton natif du format.
func ParseToggle(s string) (string, error) {
	switch s {
	case "":
		return "", nil
	case "1", "true", "yes", "y", "oui", "o", "t":
		return ToggleOn, nil
	case "0", "false", "no", "n", "non", "f":
		return ToggleOff, nil
	default:
		return "", fmt.Errorf("valeur booléenne attendue, reçu : %s", s)
	}
}
