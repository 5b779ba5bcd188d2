package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/patrickprogramme/restyle/internal/app"
	"github.com/patrickprogramme/restyle/internal/assets"
	"github.com/patrickprogramme/restyle/internal/bootstrap"
	"github.com/patrickprogramme/restyle/internal/config"
	"github.com/patrickprogramme/restyle/internal/ui"
)

func main() {
	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		// annulation utilisateur : sortie propre, code 0, fichier intact
		if errors.Is(err, ui.ErrCancelled) || errors.Is(err, context.Canceled) {
			fmt.Println("Opération annulée par l'utilisateur. Aucun fichier modifié.")
			return
		}
		fmt.Fprintf(os.Stderr, "erreur : %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &app.CLIFlags{}

	cmd := &cobra.Command{
		Use:   "restyle [fichier.ass]",
		Short: "Modifie les styles d'un fichier de sous-titres .ass",
		Long: `restyle recherche des styles dans un fichier .ass (par police, par
fréquence d'utilisation ou tous) et remplace les champs choisis : police,
taille, couleurs, gras/italique/souligné/barré, contour et ombre.

Sans flags, tout est demandé de manière interactive.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.FilePath = args[0]
			}

			// emplacement config par défaut : à côté de l'exécutable
			if flags.ConfigPath == "" {
				binDir := "."
				if exePath, err := os.Executable(); err != nil {
					log.Printf("impossible de déterminer le chemin de l'exécutable: %v", err)
				} else {
					binDir = filepath.Dir(exePath)
				}
				flags.ConfigPath = filepath.Join(binDir, "restyle.yaml")
			}

			// s'assurer que le fichier config existe, si non on le crée
			if err := bootstrap.EnsureConfigPresent(
				flags.ConfigPath,
				assets.Embedded,
				assets.DefaultConfigAsset,
			); err != nil {
				log.Printf("erreur: EnsureConfigPresent: %v", err)
			}

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return fmt.Errorf("config load: %w", err)
			}

			tui := ui.NewTerminal(cfg.ColorOutput)
			a := app.New(cfg, tui, flags)
			return a.Run(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.ConfigPath, "config", "", "chemin du fichier de configuration")
	f.StringVar(&flags.SearchType, "search-type", "", "mode de recherche : font_name | most_frequent | all_styles")
	f.StringVar(&flags.SearchFont, "search-font", "", "police à rechercher (avec --search-type font_name)")
	f.StringVar(&flags.ReplaceType, "replace-type", "", "mode de remplacement : font_name | everything")
	f.StringVar(&flags.FontName, "font-name", "", "nouveau nom de police")
	f.StringVar(&flags.FontSize, "font-size", "", "nouvelle taille de police")
	f.StringVar(&flags.PrimaryColor, "color", "", "nouvelle couleur primaire (#RRGGBB)")
	f.StringVar(&flags.SecondaryColor, "secondary-color", "", "nouvelle couleur secondaire (#RRGGBB)")
	f.StringVar(&flags.OutlineColor, "outline-color", "", "nouvelle couleur de contour (#RRGGBB)")
	f.StringVar(&flags.BackColor, "back-color", "", "nouvelle couleur d'ombre (#RRGGBB)")
	f.StringVar(&flags.Bold, "bold", "", "texte en gras (yes/no, vide = ignorer)")
	f.StringVar(&flags.Italic, "italic", "", "texte en italique (yes/no, vide = ignorer)")
	f.StringVar(&flags.Underline, "underline", "", "texte souligné (yes/no, vide = ignorer)")
	f.StringVar(&flags.Strikeout, "strikeout", "", "texte barré (yes/no, vide = ignorer)")
	f.StringVar(&flags.OutlineThickness, "outline-thickness", "", "nouvelle épaisseur de contour")
	f.StringVar(&flags.ShadowDistance, "shadow-distance", "", "nouvelle distance d'ombre")
	f.BoolVarP(&flags.AssumeYes, "yes", "y", false, "mode script : ne rien demander, les flags font foi")

	return cmd
}
