package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/patrickprogramme/restyle/internal/styles"
	"github.com/patrickprogramme/restyle/internal/ui"
	"github.com/patrickprogramme/restyle/pkg/model"
)

// chooseStyles sélectionne les styles cibles selon le mode de recherche.
// Retourne styles.ErrNoStyles (enveloppée) quand la recherche ne donne rien.
func (a *App) chooseStyles(ctx context.Context, index *styles.Index, searchType model.SearchType) ([]styles.Record, error) {
	switch searchType {
	case model.SearchByFont:
		font, err := a.resolveSearchFont(ctx, index)
		if err != nil {
			return nil, err
		}
		records := index.ByFont(font)
		if len(records) == 0 {
			return nil, fmt.Errorf("%w pour la police %q", styles.ErrNoStyles, font)
		}
		return a.narrowSelection(ctx, records)

	case model.SearchMostFrequent:
		font, err := index.MostFrequentFont()
		if err != nil {
			return nil, err
		}
		a.ui.PrintInfo(ctx, "ℹ Police la plus utilisée : "+font)
		return a.narrowSelection(ctx, index.ByFont(font))

	case model.SearchAllStyles:
		return index.Records(), nil

	default:
		return nil, fmt.Errorf("mode de recherche inconnu : %s", searchType)
	}
}

// resolveSearchFont : flag --search-font, sinon prompt validé contre les
// polices réellement présentes dans le fichier.
func (a *App) resolveSearchFont(ctx context.Context, index *styles.Index) (string, error) {
	known := index.FontNames()

	if a.flags.SearchFont != "" {
		return a.flags.SearchFont, nil
	}

	question := fmt.Sprintf("Nom de la police (connues : %s) :", strings.Join(known, ", "))
	return a.ui.Text(ctx, question, func(s string) error {
		for _, f := range known {
			if s == f {
				return nil
			}
		}
		return fmt.Errorf("aucun style n'utilise la police %q", s)
	})
}

// narrowSelection : quand plusieurs styles correspondent, proposer d'en
// choisir un seul (par NOM de style) ou de tous les garder. En mode script
// (--yes ou stdin non interactif), tous les styles sont gardés.
func (a *App) narrowSelection(ctx context.Context, records []styles.Record) ([]styles.Record, error) {
	if len(records) <= 1 || a.flags.AssumeYes {
		return records, nil
	}

	choices := []ui.Choice{{Label: "Tous les styles", Value: ""}}
	for _, rec := range records {
		choices = append(choices, ui.Choice{Label: rec.Name(), Value: rec.Name()})
	}

	selected, err := a.ui.Select(ctx, "Plusieurs styles trouvés. Lequel modifier ?", choices)
	if err != nil {
		if errors.Is(err, ui.ErrNotInteractive) {
			return records, nil
		}
		return nil, err
	}
	if selected == "" {
		return records, nil
	}

	var out []styles.Record
	for _, rec := range records {
		if rec.Name() == selected {
			out = append(out, rec)
		}
	}
	return out, nil
}

// buildFieldSpec construit la spec index->valeur à partir des flags puis,
// pour les champs restés vides, des prompts. Champ vide = ignorer.
func (a *App) buildFieldSpec(ctx context.Context, replaceType model.ReplaceType) (styles.FieldSpec, error) {
	if replaceType == model.ReplaceFontName {
		font, err := a.textValue(ctx, a.flags.FontName, "Nouveau nom de police :", nil)
		if err != nil {
			return nil, err
		}
		return styles.FieldSpec{styles.FieldFontName: font}, nil
	}

	spec := styles.FieldSpec{}

	// champs texte libres (vide = skip)
	textFields := []struct {
		idx      int
		flag     string
		question string
		isColor  bool
	}{
		{styles.FieldFontName, a.flags.FontName, "Nouveau nom de police (Entrée pour ignorer) :", false},
		{styles.FieldFontSize, a.flags.FontSize, "Nouvelle taille de police (Entrée pour ignorer) :", false},
		{styles.FieldPrimaryColor, a.flags.PrimaryColor, "Nouvelle couleur primaire hex (Entrée pour ignorer) :", true},
		{styles.FieldSecondaryColor, a.flags.SecondaryColor, "Nouvelle couleur secondaire hex (Entrée pour ignorer) :", true},
		{styles.FieldOutlineColor, a.flags.OutlineColor, "Nouvelle couleur de contour hex (Entrée pour ignorer) :", true},
		{styles.FieldBackColor, a.flags.BackColor, "Nouvelle couleur d'ombre hex (Entrée pour ignorer) :", true},
	}
	for _, f := range textFields {
		var validate func(string) error
		if f.isColor {
			validate = validateHex
		}
		v, err := a.textValue(ctx, f.flag, f.question, validate)
		if err != nil {
			return nil, err
		}
		if f.isColor && v != "" && !strings.HasPrefix(v, "#") {
			// le moteur reconnaît les couleurs à leur préfixe "#"
			v = "#" + v
		}
		spec[f.idx] = v
	}

	// bascules oui/non/ignorer
	toggleFields := []struct {
		idx      int
		flag     string
		question string
	}{
		{styles.FieldBold, a.flags.Bold, "Mettre le texte en gras ?"},
		{styles.FieldItalic, a.flags.Italic, "Mettre le texte en italique ?"},
		{styles.FieldUnderline, a.flags.Underline, "Souligner le texte ?"},
		{styles.FieldStrikeout, a.flags.Strikeout, "Barrer le texte ?"},
	}
	for _, f := range toggleFields {
		v, err := a.toggleValue(ctx, f.flag, f.question)
		if err != nil {
			return nil, err
		}
		spec[f.idx] = v
	}

	// épaisseurs
	outline, err := a.textValue(ctx, a.flags.OutlineThickness, "Épaisseur du contour (Entrée pour ignorer) :", nil)
	if err != nil {
		return nil, err
	}
	spec[styles.FieldOutline] = outline

	shadow, err := a.textValue(ctx, a.flags.ShadowDistance, "Distance de l'ombre (Entrée pour ignorer) :", nil)
	if err != nil {
		return nil, err
	}
	spec[styles.FieldShadow] = shadow

	return spec, nil
}

// textValue : valeur du flag si présente, sinon prompt. En mode script
// (--yes ou stdin non interactif), l'absence de flag signifie "ignorer".
func (a *App) textValue(ctx context.Context, flagValue, question string, validate func(string) error) (string, error) {
	if flagValue != "" {
		if validate != nil {
			if err := validate(flagValue); err != nil {
				return "", err
			}
		}
		return flagValue, nil
	}
	if a.flags.AssumeYes {
		return "", nil
	}

	v, err := a.ui.Text(ctx, question, validate)
	if err != nil {
		if errors.Is(err, ui.ErrNotInteractive) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}

// toggleValue : comme textValue mais via un menu oui/non/ignorer, et avec
// traduction vers le jeton natif du format ("1"/"0").
func (a *App) toggleValue(ctx context.Context, flagValue, question string) (string, error) {
	if flagValue != "" {
		return model.ParseToggle(flagValue)
	}
	if a.flags.AssumeYes {
		return "", nil
	}

	v, err := a.ui.Select(ctx, question, []ui.Choice{
		{Label: "Oui", Value: model.ToggleOn},
		{Label: "Non", Value: model.ToggleOff},
		{Label: "Ignorer", Value: ""},
	})
	if err != nil {
		if errors.Is(err, ui.ErrNotInteractive) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}

// validateHex accepte la chaîne vide (= ignorer) et sinon délègue au codec.
func validateHex(s string) error {
	if s == "" {
		return nil
	}
	_, err := styles.HexToNative(s)
	return err
}
