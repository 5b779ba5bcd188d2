package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateStylePath vérifie que path désigne un fichier .ass existant et
// lisible. Retourne une erreur parlante sinon (fichier absent, répertoire,
// mauvaise extension).
func ValidateStylePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("chemin de fichier vide")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("fichier introuvable : %s : %w", path, err)
		}
		return fmt.Errorf("accès au fichier %s impossible : %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s est un répertoire, pas un fichier", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".ass") {
		return fmt.Errorf("%s n'est pas un fichier .ass", path)
	}
	return nil
}

// WriteFileAtomic écrit data dans destPath de manière atomique : écriture dans
// un fichier temporaire du même répertoire puis os.Rename(tmp -> dest).
// Crée les répertoires parents si nécessaire.
//
// destPath : chemin complet vers le fichier cible.
// data : contenu à écrire.
// perm : permissions POSIX (ex: 0o644).
func WriteFileAtomic(destPath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(destPath)
	if dir == "" {
		dir = "."
	}
	// repertoire parent existe ?
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	// creation fichier temp
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// cleanup si échec
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	// écriture
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	// Sync best-effort : garantit que les données sont physiquement stockées
	_ = tmp.Sync()

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// set permission (best-effort)
	_ = os.Chmod(tmpName, perm)

	// rename
	if err := os.Rename(tmpName, destPath); err != nil {
		return fmt.Errorf("rename tmp -> dest: %w", err)
	}
	return nil
}
