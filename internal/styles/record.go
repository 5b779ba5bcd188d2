package styles

import "strings"

// Marqueurs du format ASS (comparaison après TrimSpace de la ligne).
const (
	styleMarker  = "Style:"
	formatMarker = "Format:"
)

// Index positionnels des champs d'une ligne "Style:" au format V4+.
// L'index 0 contient le marqueur et le nom ("Style: Default"), les suivants
// sont purement positionnels. Seuls les champs modifiables par l'outil sont
// nommés ici ; les autres (scale, spacing, angle, marges...) passent tels quels.
const (
	FieldName = iota
	FieldFontName
	FieldFontSize
	FieldPrimaryColor
	FieldSecondaryColor
	FieldOutlineColor
	FieldBackColor
	FieldBold
	FieldItalic
	FieldUnderline
	FieldStrikeout
)

const (
	FieldOutline = 16
	FieldShadow  = 17
)

// Nombre de champs d'une ligne Style au format V4+ (schéma fixe).
// Utilisé quand le bloc de styles n'a pas de ligne "Format:".
const defaultFieldCount = 23

// Record représente une définition de style : la séquence ordonnée de ses
// champs (tokens séparés par des virgules) plus sa provenance dans le fichier.
type Record struct {
	// Fields : tokens de la ligne, positionnels. Fields[0] = "Style: <nom>".
	Fields []string

	// Raw : contenu original de la ligne, sans terminateur de ligne.
	// Sert de clé de correspondance lors du remplacement (voir Apply).
	Raw string

	// SourceLine : index de la ligne d'origine dans la séquence complète du
	// fichier, pour pouvoir réécrire sans toucher au reste du contenu.
	SourceLine int
}

// Name retourne le nom du style (la partie de Fields[0] après "Style:").
func (r Record) Name() string {
	if len(r.Fields) == 0 {
		return ""
	}
	head := strings.TrimSpace(r.Fields[FieldName])
	return strings.TrimSpace(strings.TrimPrefix(head, styleMarker))
}

// FontName retourne le nom de la police (Fields[1]).
func (r Record) FontName() string {
	if len(r.Fields) <= FieldFontName {
		return ""
	}
	return strings.TrimSpace(r.Fields[FieldFontName])
}
