package styles

import "strings"

// FieldSpec associe un index de champ (FieldFontName, FieldPrimaryColor...)
// à sa nouvelle valeur. Une valeur vide ou un index absent signifie
// "ne pas toucher". Les valeurs commençant par "#" sont des couleurs hex
// saisies par l'utilisateur et passent par HexToNative ; tout le reste
// (police, taille, bascules "1"/"0", épaisseurs) est écrit tel quel.
type FieldSpec map[int]string

// Apply produit la séquence de lignes réécrite : seuls les champs non vides
// de spec, sur les seules lignes correspondant à un Record choisi, changent.
// Toutes les autres lignes passent inchangées, octet pour octet, terminateurs
// compris.
//
// La correspondance se fait sur le CONTENU de la ligne (égalité textuelle
// avec le Raw d'un Record choisi), pas sur sa position : deux lignes de
// style strictement identiques forment un seul groupe remplaçable. Choix de
// conception assumé, voir DESIGN.md.
//
// L'opération est atomique par invocation : toutes les couleurs de spec sont
// validées avant la première mutation, donc une ErrInvalidColor garantit que
// rien n'a été réécrit.
func Apply(lines []string, chosen []Record, spec FieldSpec) ([]string, error) {
	// 1) résolution/validation amont : couleurs traduites, champs vides écartés
	resolved := make(map[int]string, len(spec))
	for idx, val := range spec {
		if val == "" {
			continue
		}
		if strings.HasPrefix(val, "#") {
			native, err := HexToNative(val)
			if err != nil {
				return nil, err
			}
			resolved[idx] = native
			continue
		}
		resolved[idx] = val
	}

	out := make([]string, len(lines))
	copy(out, lines)

	if len(resolved) == 0 || len(chosen) == 0 {
		// spec vide ou tout-skip : séquence identique à l'entrée
		return out, nil
	}

	wanted := make(map[string]struct{}, len(chosen))
	for _, rec := range chosen {
		wanted[rec.Raw] = struct{}{}
	}

	// 2) réécriture, en suivant les mêmes transitions de section que Scan :
	// seules les lignes À L'INTÉRIEUR du bloc de styles sont éligibles.
	state := outsideStyles
	for i, raw := range lines {
		content, eol := splitEOL(raw)
		trimmed := strings.TrimSpace(content)

		if state == outsideStyles {
			if isStylesHeader(trimmed) {
				state = insideStyles
			}
			continue
		}

		if strings.HasPrefix(trimmed, "[") {
			if !isStylesHeader(trimmed) {
				state = outsideStyles
			}
			continue
		}

		if !strings.HasPrefix(trimmed, styleMarker) {
			continue
		}
		if _, ok := wanted[content]; !ok {
			continue
		}

		fields := strings.Split(content, ",")
		changed := false
		for idx, val := range resolved {
			if idx < 0 || idx >= len(fields) {
				continue
			}
			fields[idx] = val
			changed = true
		}
		if changed {
			out[i] = strings.Join(fields, ",") + eol
		}
	}

	return out, nil
}
