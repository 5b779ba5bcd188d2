package styles

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.ass")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("écriture du fichier de test : %v", err)
	}
	return path
}

func TestSession_RoundTripByteIdentical(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{
			name:    "LF simple",
			content: []byte("[V4+ Styles]\n" + styleLine("Default", "Arial", "48") + "\n"),
		},
		{
			name:    "CRLF avec BOM",
			content: []byte("\xef\xbb\xbf[Script Info]\r\n[V4+ Styles]\r\n" + styleLine("Default", "Arial", "48") + "\r\n"),
		},
		{
			name:    "fins de lignes melangees, pas de terminateur final",
			content: []byte("[V4+ Styles]\r\n" + styleLine("A", "Arial", "48") + "\n" + styleLine("B", "Arial", "48")),
		},
		{
			name:    "fichier vide",
			content: []byte{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTestFile(t, tc.content)

			s, err := Open(path)
			if err != nil {
				t.Fatalf("Open : %v", err)
			}
			if err := s.Persist(); err != nil {
				t.Fatalf("Persist : %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("relecture : %v", err)
			}
			if string(got) != string(tc.content) {
				t.Errorf("round-trip non identique :\ngot  %q\nwant %q", got, tc.content)
			}
		})
	}
}

func TestSession_OpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.ass"))
	if err == nil {
		t.Fatal("Open sur fichier absent : erreur attendue")
	}
	// l'erreur I/O d'origine doit rester accessible via errors.Is
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("erreur = %v; want os.ErrNotExist enveloppée", err)
	}
}

func TestSession_ReplaceAndPersist(t *testing.T) {
	content := "\xef\xbb\xbf[Script Info]\r\nTitle: t\r\n\r\n[V4+ Styles]\r\n" +
		styleLine("Default", "Arial", "48") + "\r\n" +
		styleLine("Signs", "Calibri", "36") + "\r\n" +
		"\r\n[Events]\r\nDialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Salut\r\n"
	path := writeTestFile(t, []byte(content))

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open : %v", err)
	}
	ix := NewIndex(s.Records())

	if err := s.Replace(ix.ByFont("Arial"), FieldSpec{FieldFontName: "Verdana"}); err != nil {
		t.Fatalf("Replace : %v", err)
	}
	if err := s.Persist(); err != nil {
		t.Fatalf("Persist : %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("relecture : %v", err)
	}
	text := string(got)

	if !strings.HasPrefix(text, "\xef\xbb\xbf") {
		t.Error("BOM perdu au round-trip")
	}
	if !strings.Contains(text, "Style: Default,Verdana,48") {
		t.Errorf("police non remplacée :\n%s", text)
	}
	if !strings.Contains(text, "Style: Signs,Calibri,36") {
		t.Error("ligne Calibri modifiée alors qu'elle n'était pas choisie")
	}
	if !strings.Contains(text, "Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Salut\r\n") {
		t.Error("contenu hors bloc de styles altéré")
	}
}

func TestSession_WriteBackupKeepsOriginalBytes(t *testing.T) {
	content := "[V4+ Styles]\n" + styleLine("Default", "Arial", "48") + "\n"
	path := writeTestFile(t, []byte(content))

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open : %v", err)
	}
	if err := s.Replace(s.Records(), FieldSpec{FieldFontName: "Verdana"}); err != nil {
		t.Fatalf("Replace : %v", err)
	}

	backup, err := s.WriteBackup()
	if err != nil {
		t.Fatalf("WriteBackup : %v", err)
	}
	got, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("lecture sauvegarde : %v", err)
	}
	// la sauvegarde contient l'ORIGINAL, pas la version mutée
	if string(got) != content {
		t.Errorf("sauvegarde = %q; want %q", got, content)
	}
}
