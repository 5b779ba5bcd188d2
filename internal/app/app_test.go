package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patrickprogramme/restyle/internal/config"
	"github.com/patrickprogramme/restyle/internal/styles"
	"github.com/patrickprogramme/restyle/internal/ui"
)

// scriptedUI : implémentation de ui.Interface pour les tests, avec des
// réponses pré-enregistrées (files d'attente consommées dans l'ordre).
type scriptedUI struct {
	selects []string
	texts   []string

	infos     []string
	successes []string
	errs      []string

	// cancelEverything : simuler un Ctrl+C sur n'importe quel prompt
	cancelEverything bool
}

func (s *scriptedUI) Select(ctx context.Context, question string, choices []ui.Choice) (string, error) {
	if s.cancelEverything {
		return "", ui.ErrCancelled
	}
	if len(s.selects) == 0 {
		return "", ui.ErrNotInteractive
	}
	v := s.selects[0]
	s.selects = s.selects[1:]
	return v, nil
}

func (s *scriptedUI) Text(ctx context.Context, question string, validate func(string) error) (string, error) {
	if s.cancelEverything {
		return "", ui.ErrCancelled
	}
	if len(s.texts) == 0 {
		return "", ui.ErrNotInteractive
	}
	v := s.texts[0]
	s.texts = s.texts[1:]
	if validate != nil {
		if err := validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (s *scriptedUI) ShowStyleTable(ctx context.Context, records []styles.Record) {}

func (s *scriptedUI) PrintInfo(ctx context.Context, msg string)    { s.infos = append(s.infos, msg) }
func (s *scriptedUI) PrintSuccess(ctx context.Context, msg string) { s.successes = append(s.successes, msg) }
func (s *scriptedUI) PrintError(ctx context.Context, msg string)   { s.errs = append(s.errs, msg) }

func testConfig() *config.Config {
	// UseClipboardPath coupé : pas d'accès presse-papier dans les tests
	return &config.Config{ColorOutput: false, ConfigVersion: config.CurrentConfigVersion}
}

const testFormatLine = "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"

func styleLine(name, font, size string) string {
	return "Style: " + name + "," + font + "," + size +
		",&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1"
}

func writeScenarioFile(t *testing.T) string {
	t.Helper()
	content := strings.Join([]string{
		"[Script Info]",
		"Title: scenario",
		"",
		"[V4+ Styles]",
		testFormatLine,
		styleLine("Default", "Arial", "48"),
		styleLine("Signs", "Arial", "36"),
		styleLine("Karaoke", "Calibri", "40"),
		"",
		"[Events]",
		"Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Salut",
		"",
	}, "\n")
	path := filepath.Join(t.TempDir(), "scenario.ass")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_FlagsOnly_MostFrequentEverything(t *testing.T) {
	path := writeScenarioFile(t)
	mock := &scriptedUI{}

	a := New(testConfig(), mock, &CLIFlags{
		FilePath:     path,
		SearchType:   "most_frequent",
		ReplaceType:  "everything",
		FontName:     "Verdana",
		PrimaryColor: "#FF0000",
		AssumeYes:    true,
	})

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run : %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(got)

	// les deux lignes Arial sont réécrites (police + couleur native du rouge)
	if strings.Count(text, ",Verdana,") != 2 {
		t.Errorf("lignes Verdana = %d; want 2 :\n%s", strings.Count(text, ",Verdana,"), text)
	}
	if strings.Count(text, "&H000000FF,&H000000FF") != 2 {
		// primaire remplacée par &H000000FF, secondaire d'origine identique
		t.Errorf("couleur primaire non remplacée :\n%s", text)
	}
	// la ligne Calibri est intacte
	if !strings.Contains(text, styleLine("Karaoke", "Calibri", "40")) {
		t.Errorf("ligne Calibri altérée :\n%s", text)
	}
	// info sur la police la plus fréquente affichée
	found := false
	for _, msg := range mock.infos {
		if strings.Contains(msg, "Arial") {
			found = true
		}
	}
	if !found {
		t.Errorf("info 'police la plus utilisée' absente : %v", mock.infos)
	}
	if len(mock.successes) != 1 {
		t.Errorf("messages de succès = %v; want 1", mock.successes)
	}
}

func TestRun_InteractivePrompts(t *testing.T) {
	path := writeScenarioFile(t)
	mock := &scriptedUI{
		selects: []string{
			"font_name", // mode de recherche
			"",          // "Tous les styles" au menu de sélection
			"font_name", // mode de remplacement
		},
		texts: []string{
			"Arial",   // police recherchée
			"Verdana", // nouveau nom de police
		},
	}

	a := New(testConfig(), mock, &CLIFlags{FilePath: path})
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run : %v", err)
	}

	got, _ := os.ReadFile(path)
	if strings.Count(string(got), ",Verdana,") != 2 {
		t.Errorf("remplacement interactif raté :\n%s", got)
	}
}

func TestRun_CancellationLeavesFileUntouched(t *testing.T) {
	path := writeScenarioFile(t)
	before, _ := os.ReadFile(path)

	mock := &scriptedUI{cancelEverything: true}
	a := New(testConfig(), mock, &CLIFlags{FilePath: path})

	err := a.Run(context.Background())
	if !errors.Is(err, ui.ErrCancelled) {
		t.Fatalf("erreur = %v; want ErrCancelled", err)
	}

	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("fichier modifié malgré l'annulation")
	}
}

func TestRun_EmptyReplacementSkipsEverything(t *testing.T) {
	// mode font_name avec valeur vide : style sélectionné mais inchangé
	path := writeScenarioFile(t)
	before, _ := os.ReadFile(path)

	a := New(testConfig(), &scriptedUI{}, &CLIFlags{
		FilePath:    path,
		SearchType:  "all_styles",
		ReplaceType: "font_name",
		AssumeYes:   true,
	})
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run : %v", err)
	}

	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("fichier modifié alors que la spec était vide")
	}
}

func TestRun_UnknownSearchFontFails(t *testing.T) {
	path := writeScenarioFile(t)

	a := New(testConfig(), &scriptedUI{}, &CLIFlags{
		FilePath:   path,
		SearchType: "font_name",
		SearchFont: "Comic Sans MS",
		AssumeYes:  true,
	})

	err := a.Run(context.Background())
	if !errors.Is(err, styles.ErrNoStyles) {
		t.Fatalf("erreur = %v; want ErrNoStyles", err)
	}
}

func TestRun_InvalidColorFlagAbortsBeforeWrite(t *testing.T) {
	path := writeScenarioFile(t)
	before, _ := os.ReadFile(path)

	a := New(testConfig(), &scriptedUI{}, &CLIFlags{
		FilePath:     path,
		SearchType:   "all_styles",
		ReplaceType:  "everything",
		PrimaryColor: "GGHHII",
		AssumeYes:    true,
	})

	err := a.Run(context.Background())
	if !errors.Is(err, styles.ErrInvalidColor) {
		t.Fatalf("erreur = %v; want ErrInvalidColor", err)
	}

	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("fichier modifié malgré la couleur invalide")
	}
}

func TestToggleFlagsTranslatedToNativeTokens(t *testing.T) {
	path := writeScenarioFile(t)

	a := New(testConfig(), &scriptedUI{}, &CLIFlags{
		FilePath:    path,
		SearchType:  "all_styles",
		ReplaceType: "everything",
		Bold:        "yes",
		Italic:      "no",
		AssumeYes:   true,
	})
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run : %v", err)
	}

	got, _ := os.ReadFile(path)
	// bold=1, italic=0 sur chaque ligne de style : ...,&H00000000,1,0,0,0,...
	if strings.Count(string(got), ",&H00000000,1,0,0,0,") != 3 {
		t.Errorf("bascules non appliquées :\n%s", got)
	}
}
