package clipboard

import (
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// ReadAll lit le contenu texte du presse-papier.
// Retourne une chaîne de caractères et une erreur éventuelle.
func ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return text, nil
}

// ReadExistingPath lit le presse-papier et retourne son contenu si c'est le
// chemin d'un fichier existant. Retourne ("", false) dans tous les autres cas
// (presse-papier vide, inaccessible, contenu multi-ligne, fichier absent) :
// c'est une suggestion best-effort, jamais une erreur.
func ReadExistingPath() (string, bool) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", false
	}
	path := strings.TrimSpace(strings.TrimPrefix(text, "\ufeff"))
	if path == "" || strings.ContainsAny(path, "\r\n") {
		return "", false
	}
	// les chemins collés depuis un explorateur arrivent parfois entre guillemets
	path = strings.Trim(path, `"'`)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
