package ui

import "github.com/charmbracelet/lipgloss"

// Styles lipgloss de la sortie terminal. Valeurs immuables, sûres en
// lecture concurrente ; le rendu n'est appliqué que si la couleur est
// activée (voir terminalUI.render).
var (
	// infoStyle : messages d'information ("ℹ Police la plus fréquente...")
	infoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")) // bleu

	// successStyle : confirmation finale ("✓ Fichier mis à jour...")
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")) // vert

	// errorStyle : erreurs et annulations
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")) // rouge

	// questionStyle : texte des prompts
	questionStyle = lipgloss.NewStyle().
			Bold(true)

	// choiceStyle : numéros des entrées de menu
	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")) // cyan
)
