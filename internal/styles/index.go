package styles

import "errors"

// ErrNoStyles : une recherche (par police ou par fréquence) n'a trouvé aucun
// style. Condition terminale pour l'invocation courante, pas une panique.
var ErrNoStyles = errors.New("aucun style trouvé")

// Index : requêtes en lecture seule sur une séquence fixe de Record.
// Aucune mutation, aucune dépendance au fichier : tout se joue en mémoire.
type Index struct {
	records []Record
}

func NewIndex(records []Record) *Index {
	return &Index{records: records}
}

// Records retourne tous les styles, dans l'ordre du fichier.
func (ix *Index) Records() []Record {
	return ix.records
}

// FontNames retourne les noms de police distincts, dans l'ordre de première
// apparition (ordre stable, pratique pour les menus).
func (ix *Index) FontNames() []string {
	seen := make(map[string]struct{}, len(ix.records))
	var names []string
	for _, rec := range ix.records {
		f := rec.FontName()
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		names = append(names, f)
	}
	return names
}

// ByFont retourne tous les styles dont la police est name, dans l'ordre du
// fichier. Séquence vide si la police est inconnue — jamais une erreur, c'est
// à l'appelant de valider contre FontNames() avant.
func (ix *Index) ByFont(name string) []Record {
	var out []Record
	for _, rec := range ix.records {
		if rec.FontName() == name {
			out = append(out, rec)
		}
	}
	return out
}

// ByName retourne les styles dont le NOM (pas la police) est name.
func (ix *Index) ByName(name string) []Record {
	var out []Record
	for _, rec := range ix.records {
		if rec.Name() == name {
			out = append(out, rec)
		}
	}
	return out
}

// MostFrequentFont retourne la police la plus utilisée. En cas d'égalité,
// c'est la police rencontrée en premier dans le fichier qui gagne :
// l'accumulation se fait dans l'ordre du scan et le premier maximum
// l'emporte, le résultat est donc déterministe.
func (ix *Index) MostFrequentFont() (string, error) {
	if len(ix.records) == 0 {
		return "", ErrNoStyles
	}

	counts := make(map[string]int, len(ix.records))
	var order []string
	for _, rec := range ix.records {
		f := rec.FontName()
		if counts[f] == 0 {
			order = append(order, f)
		}
		counts[f]++
	}

	best := order[0]
	for _, f := range order[1:] {
		if counts[f] > counts[best] {
			best = f
		}
	}
	return best, nil
}
