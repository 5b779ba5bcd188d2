package styles

import "strings"

// État de la machine à deux états qui délimite le bloc de styles.
// Les sections ne s'imbriquent pas : l'en-tête de la section suivante
// (toute ligne commençant par "[") termine le bloc courant.
type sectionState int

const (
	outsideStyles sectionState = iota
	insideStyles
)

// isStylesHeader reconnaît l'en-tête de la section des styles sur le contenu
// trimé de la ligne. Les fichiers V4 (SSA) et V4+ (ASS) sont acceptés, la
// casse est ignorée (certains muxers écrivent "[V4+ styles]").
func isStylesHeader(trimmed string) bool {
	switch strings.ToLower(trimmed) {
	case "[v4+ styles]", "[v4 styles]":
		return true
	}
	return false
}

// Scan parcourt la séquence de lignes du fichier et retourne les Record du ou
// des blocs de styles, dans l'ordre du fichier.
//
// Le nombre de champs attendu vient de la ligne "Format:" du bloc quand elle
// existe, sinon du schéma V4+ (23 champs). Les lignes du bloc qui ne se
// découpent pas en ce nombre exact de champs (commentaires, lignes vides,
// lignes tronquées) sont ignorées silencieusement : tolérance volontaire,
// on n'essaie ni de réparer ni d'échouer.
//
// Chaque ligne peut conserver son terminateur ("\n" ou "\r\n") : il est
// retiré avant analyse, ce qui rend le scan insensible aux fins de ligne
// mélangées.
func Scan(lines []string) []Record {
	var records []Record

	state := outsideStyles
	fieldCount := defaultFieldCount

	for i, raw := range lines {
		content, _ := splitEOL(raw)
		trimmed := strings.TrimSpace(content)

		switch state {
		case outsideStyles:
			if isStylesHeader(trimmed) {
				state = insideStyles
				fieldCount = defaultFieldCount
			}

		case insideStyles:
			if strings.HasPrefix(trimmed, "[") {
				// Début de la section suivante. Si c'est une nouvelle section
				// de styles (occurrence contiguë ou non), on reste dedans et
				// on repart sur le schéma par défaut.
				if isStylesHeader(trimmed) {
					fieldCount = defaultFieldCount
				} else {
					state = outsideStyles
				}
				continue
			}

			if strings.HasPrefix(trimmed, formatMarker) {
				if n := len(strings.Split(trimmed, ",")); n > 1 {
					fieldCount = n
				}
				continue
			}

			if !strings.HasPrefix(trimmed, styleMarker) {
				continue
			}

			fields := strings.Split(content, ",")
			if len(fields) != fieldCount {
				// ligne malformée : exclue du modèle, pas une erreur
				continue
			}
			records = append(records, Record{
				Fields:     fields,
				Raw:        content,
				SourceLine: i,
			})
		}
	}

	return records
}

// splitEOL sépare le contenu d'une ligne de son terminateur éventuel.
func splitEOL(line string) (content, eol string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}
