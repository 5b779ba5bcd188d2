package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/patrickprogramme/restyle/internal/clipboard"
	"github.com/patrickprogramme/restyle/internal/config"
	"github.com/patrickprogramme/restyle/internal/fsutil"
	"github.com/patrickprogramme/restyle/internal/styles"
	"github.com/patrickprogramme/restyle/internal/ui"
	"github.com/patrickprogramme/restyle/pkg/model"
)

// CLIFlags contient les informations venant des flags de l'app.
// Toute valeur vide sera demandée au prompt (mode interactif) ou traitée
// comme "ignorer ce champ" (valeurs de remplacement optionnelles).
type CLIFlags struct {
	ConfigPath string
	FilePath   string

	SearchType  string
	SearchFont  string
	ReplaceType string

	// valeurs de remplacement ; vide = ne pas toucher au champ
	FontName         string
	FontSize         string
	PrimaryColor     string
	SecondaryColor   string
	OutlineColor     string
	BackColor        string
	Bold             string
	Italic           string
	Underline        string
	Strikeout        string
	OutlineThickness string
	ShadowDistance   string

	// AssumeYes : ne rien demander, les flags font foi (mode script)
	AssumeYes bool
}

// App orchestre les différentes dépendances (UI, session de fichier, config).
type App struct {
	cfg   *config.Config
	ui    ui.Interface
	flags *CLIFlags
}

// New construit l'application en injectant ses dépendances.
// Pour les tests, on préférera construire App avec une implémentation mock de ui.Interface.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags) *App {
	return &App{
		cfg:   cfg,
		ui:    uiClient,
		flags: flags,
	}
}

// Run exécute le flux principal : localiser le fichier, scanner les styles,
// sélectionner, construire la spec de remplacement, appliquer, persister.
// Aucune écriture disque avant le Persist final : une annulation en cours de
// route laisse le fichier source strictement intact.
func (a *App) Run(ctx context.Context) error {
	// avertir sur les modes par défaut invalides de la config (non fatal)
	warnings, err := a.cfg.ValidateModes()
	if err != nil {
		return fmt.Errorf("validation de la config : %w", err)
	}
	for _, w := range warnings {
		a.ui.PrintError(ctx, "warning : "+w)
	}

	// 1) fichier cible : priorité flag > presse-papier > prompt
	path, err := a.resolveFilePath(ctx)
	if err != nil {
		return err
	}

	session, err := styles.Open(path)
	if err != nil {
		return err
	}
	index := styles.NewIndex(session.Records())
	if len(index.Records()) == 0 {
		return fmt.Errorf("%w dans %s", styles.ErrNoStyles, path)
	}

	// 2) recherche + sélection des styles à modifier
	searchType, err := a.resolveSearchType(ctx)
	if err != nil {
		return err
	}
	chosen, err := a.chooseStyles(ctx, index, searchType)
	if err != nil {
		return err
	}
	a.ui.ShowStyleTable(ctx, chosen)

	// 3) spec de remplacement
	replaceType, err := a.resolveReplaceType(ctx)
	if err != nil {
		return err
	}
	spec, err := a.buildFieldSpec(ctx, replaceType)
	if err != nil {
		return err
	}

	// 4) application + persistance (unique point de mutation du disque)
	if err := session.Replace(chosen, spec); err != nil {
		return err
	}
	if a.cfg.BackupOriginal {
		backup, err := session.WriteBackup()
		if err != nil {
			return err
		}
		a.ui.PrintInfo(ctx, "ℹ Sauvegarde écrite : "+backup)
	}
	if err := session.Persist(); err != nil {
		return err
	}

	a.ui.PrintSuccess(ctx, "✓ Fichier .ass mis à jour : "+session.Path())
	return nil
}

// resolveFilePath détermine le fichier à modifier : flag, sinon suggestion
// depuis le presse-papier, sinon prompt avec validation.
func (a *App) resolveFilePath(ctx context.Context) (string, error) {
	if a.flags.FilePath != "" {
		if err := fsutil.ValidateStylePath(a.flags.FilePath); err != nil {
			return "", err
		}
		return a.flags.FilePath, nil
	}

	if a.cfg.UseClipboardPath {
		if clip, ok := clipboard.ReadExistingPath(); ok {
			if fsutil.ValidateStylePath(clip) == nil {
				a.ui.PrintInfo(ctx, "ℹ Utilisation du chemin depuis le presse-papier : "+clip)
				return clip, nil
			}
		}
	}

	return a.ui.Text(ctx, "Chemin du fichier .ass à modifier :", func(s string) error {
		return fsutil.ValidateStylePath(strings.TrimSpace(s))
	})
}

func (a *App) resolveSearchType(ctx context.Context) (model.SearchType, error) {
	raw := a.flags.SearchType
	if raw == "" {
		raw = a.cfg.DefaultSearchType
	}
	if raw != "" {
		return model.ParseSearchType(raw)
	}

	v, err := a.ui.Select(ctx, "Comment rechercher les styles ?", []ui.Choice{
		{Label: "Par nom de police", Value: string(model.SearchByFont)},
		{Label: "Police la plus utilisée", Value: string(model.SearchMostFrequent)},
		{Label: "Tous les styles", Value: string(model.SearchAllStyles)},
	})
	if err != nil {
		return "", err
	}
	return model.ParseSearchType(v)
}

func (a *App) resolveReplaceType(ctx context.Context) (model.ReplaceType, error) {
	raw := a.flags.ReplaceType
	if raw == "" {
		raw = a.cfg.DefaultReplaceType
	}
	if raw != "" {
		return model.ParseReplaceType(raw)
	}

	v, err := a.ui.Select(ctx, "Que voulez-vous remplacer ?", []ui.Choice{
		{Label: "Le nom de police uniquement", Value: string(model.ReplaceFontName)},
		{Label: "Tout", Value: string(model.ReplaceEverything)},
	})
	if err != nil {
		return "", err
	}
	return model.ParseReplaceType(v)
}
