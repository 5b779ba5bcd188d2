package styles

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColor : code couleur hexadécimal mal formé.
// Détecté AVANT toute réécriture de ligne (voir Apply), jamais en cours de mutation.
var ErrInvalidColor = errors.New("code couleur hexadécimal invalide")

// HexToNative convertit une couleur "#RRGGBB" vers l'encodage natif du format
// ASS : "&H" suivi d'un octet alpha fixe 00 puis des octets bleu, vert, rouge
// (l'ordre des octets est inversé par rapport à la saisie, alpha toujours opaque).
// Exemple : "#112233" -> "&H00332211".
//
// Le "#" initial est optionnel. Il n'y a pas de décodage inverse : l'outil
// écrit des couleurs, il ne les relit jamais en hex pour affichage.
func HexToNative(hex string) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return "", fmt.Errorf("%w : %q", ErrInvalidColor, hex)
	}
	for _, r := range h {
		if !isHexDigit(r) {
			return "", fmt.Errorf("%w : %q", ErrInvalidColor, hex)
		}
	}
	h = strings.ToUpper(h)
	// RRGGBB -> &H00BBGGRR
	return "&H00" + h[4:6] + h[2:4] + h[0:2], nil
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
