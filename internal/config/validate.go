package config

import (
	"fmt"

	"github.com/patrickprogramme/restyle/pkg/model"
)

// ValidateModes vérifie de manière statique que les modes par défaut de la
// config sont des valeurs connues. Une valeur vide n'est pas une erreur
// (elle signifie "demander à l'utilisateur") ; une valeur inconnue est
// remontée en warning non-fatal : l'outil demandera au prompt comme si la
// valeur était vide.
func (c *Config) ValidateModes() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	if c.DefaultSearchType != "" {
		if _, perr := model.ParseSearchType(c.DefaultSearchType); perr != nil {
			warnings = append(warnings, fmt.Sprintf("default_search_type invalide (%q), ignoré : %v", c.DefaultSearchType, perr))
			c.DefaultSearchType = ""
		}
	}

	if c.DefaultReplaceType != "" {
		if _, perr := model.ParseReplaceType(c.DefaultReplaceType); perr != nil {
			warnings = append(warnings, fmt.Sprintf("default_replace_type invalide (%q), ignoré : %v", c.DefaultReplaceType, perr))
			c.DefaultReplaceType = ""
		}
	}

	return warnings, nil
}
