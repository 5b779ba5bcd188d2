package styles

import (
	"fmt"
	"os"
	"strings"

	"github.com/patrickprogramme/restyle/internal/fsutil"
)

const utf8BOM = "\xef\xbb\xbf"

// Session possède la séquence complète de lignes d'un fichier .ass pour la
// durée d'une édition : load -> scan -> (sélection externe) -> replace ->
// persist. Aucun état ne survit à la session, l'unique point de mutation du
// disque est Persist.
type Session struct {
	path string
	bom  bool

	// lines : toutes les lignes brutes du fichier, chacune avec son propre
	// terminateur. Jamais réordonnées ni tronquées ; seules les lignes des
	// styles choisis sont remplacées.
	lines []string

	// original : octets lus au chargement, conservés pour la sauvegarde .bak
	original []byte

	records []Record
}

// Open lit le fichier en mémoire (une seule tentative, pas de handle gardé
// ouvert) et construit la vue des styles. Le BOM UTF-8 éventuel est mis de
// côté et restitué à l'identique par Persist — aucun transcodage.
func Open(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier %s impossible : %w", path, err)
	}

	s := &Session{path: path, original: data}

	text := string(data)
	if strings.HasPrefix(text, utf8BOM) {
		s.bom = true
		text = strings.TrimPrefix(text, utf8BOM)
	}
	s.lines = splitLines(text)
	s.records = Scan(s.lines)

	return s, nil
}

func (s *Session) Path() string { return s.path }

// Records retourne la vue des styles construite au chargement.
func (s *Session) Records() []Record { return s.records }

// Replace applique spec aux styles choisis. En cas d'erreur (couleur
// invalide), la séquence de lignes reste intacte : rien n'est partiellement
// appliqué.
func (s *Session) Replace(chosen []Record, spec FieldSpec) error {
	out, err := Apply(s.lines, chosen, spec)
	if err != nil {
		return err
	}
	s.lines = out
	return nil
}

// Persist sérialise la séquence de lignes (éventuellement mutée) vers le
// fichier source, en réécrivant le BOM s'il y en avait un. L'écriture passe
// par un fichier temporaire + rename : le fichier d'origine est soit
// entièrement remplacé, soit laissé intact.
func (s *Session) Persist() error {
	var b strings.Builder
	if s.bom {
		b.WriteString(utf8BOM)
	}
	for _, line := range s.lines {
		b.WriteString(line)
	}
	if err := fsutil.WriteFileAtomic(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("écriture du fichier %s impossible : %w", s.path, err)
	}
	return nil
}

// WriteBackup écrit le contenu ORIGINAL (tel que lu par Open) dans
// path+".bak". À appeler avant Persist quand la config le demande.
func (s *Session) WriteBackup() (string, error) {
	backup := s.path + ".bak"
	if err := fsutil.WriteFileAtomic(backup, s.original, 0o644); err != nil {
		return "", fmt.Errorf("écriture de la sauvegarde %s impossible : %w", backup, err)
	}
	return backup, nil
}

// splitLines découpe en conservant le terminateur de chaque ligne, y compris
// quand "\n" et "\r\n" cohabitent dans le même fichier. La dernière ligne
// peut ne pas avoir de terminateur.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
