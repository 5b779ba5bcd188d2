package ui

import (
	"context"
	"errors"

	"github.com/patrickprogramme/restyle/internal/styles"
)

// ErrCancelled : l'utilisateur a interrompu la saisie (Ctrl+C / Ctrl+D).
// L'appelant doit quitter proprement SANS toucher au fichier.
var ErrCancelled = errors.New("opération annulée par l'utilisateur")

// ErrNotInteractive : une saisie est requise mais stdin n'est pas un
// terminal. Les valeurs manquantes doivent alors venir des flags.
var ErrNotInteractive = errors.New("saisie impossible en mode non interactif")

// Choice : une entrée de menu. Label est affiché, Value est retourné.
type Choice struct {
	Label string
	Value string
}

type Interface interface {
	// Select affiche un menu numéroté et retourne la Value du choix.
	Select(ctx context.Context, question string, choices []Choice) (string, error)

	// Text demande une saisie libre. validate peut être nil ; une saisie
	// refusée par validate fait reboucler le prompt. La chaîne vide est
	// acceptée telle quelle (convention "vide = ignorer").
	Text(ctx context.Context, question string, validate func(string) error) (string, error)

	// ShowStyleTable affiche les styles trouvés sous forme de tableau.
	ShowStyleTable(ctx context.Context, records []styles.Record)

	PrintInfo(ctx context.Context, s string)
	PrintSuccess(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
