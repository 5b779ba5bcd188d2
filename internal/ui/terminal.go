package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/patrickprogramme/restyle/internal/styles"
)

type terminalUI struct {
	reader      *bufio.Reader
	interactive bool
	color       bool

	// pump : une goroutine unique lit stdin ligne à ligne, ce qui permet
	// d'annuler un prompt bloquant via le context (Ctrl+C)
	once   sync.Once
	lineCh chan string
	errCh  chan error
}

// NewTerminal construit l'implémentation terminale. La couleur est coupée si
// colorOutput est false dans la config ou si stdout n'est pas un TTY ; les
// prompts sont refusés (ErrNotInteractive) si stdin n'est pas un TTY.
func NewTerminal(colorOutput bool) Interface {
	return &terminalUI{
		reader:      bufio.NewReader(os.Stdin),
		interactive: isTerminal(os.Stdin.Fd()),
		color:       colorOutput && isTerminal(os.Stdout.Fd()),
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (t *terminalUI) startPump() {
	t.once.Do(func() {
		t.lineCh = make(chan string)
		t.errCh = make(chan error, 1)
		go func() {
			for {
				line, err := t.reader.ReadString('\n')
				if err != nil {
					t.errCh <- err
					close(t.lineCh)
					return
				}
				t.lineCh <- strings.TrimSpace(line)
			}
		}()
	})
}

// readLine bloque jusqu'à la prochaine ligne saisie, l'annulation du context,
// ou la fin de stdin (Ctrl+D, traité comme une annulation).
func (t *terminalUI) readLine(ctx context.Context) (string, error) {
	if !t.interactive {
		return "", ErrNotInteractive
	}
	t.startPump()

	select {
	case <-ctx.Done():
		return "", ErrCancelled
	case line, ok := <-t.lineCh:
		if !ok {
			return "", ErrCancelled
		}
		return line, nil
	case err := <-t.errCh:
		_ = err // EOF ou erreur de lecture : dans les deux cas on abandonne
		return "", ErrCancelled
	}
}

// render applique un style lipgloss seulement si la couleur est activée.
func (t *terminalUI) render(style lipgloss.Style, s string) string {
	if !t.color {
		return s
	}
	return style.Render(s)
}

func (t *terminalUI) Select(ctx context.Context, question string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("menu sans choix : %s", question)
	}

	fmt.Println(t.render(questionStyle, question))
	for i, c := range choices {
		fmt.Printf("  %s %s\n", t.render(choiceStyle, fmt.Sprintf("%d)", i+1)), c.Label)
	}

	for {
		fmt.Printf("Choix [1-%d] : ", len(choices))
		input, err := t.readLine(ctx)
		if err != nil {
			return "", err
		}

		// numéro du menu, ou libellé exact en secours
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1].Value, nil
		}
		for _, c := range choices {
			if strings.EqualFold(input, c.Label) || input == c.Value {
				return c.Value, nil
			}
		}
		t.PrintError(ctx, "❌ Choix invalide. Essayez à nouveau.")
	}
}

func (t *terminalUI) Text(ctx context.Context, question string, validate func(string) error) (string, error) {
	for {
		fmt.Print(t.render(questionStyle, question) + " ")
		input, err := t.readLine(ctx)
		if err != nil {
			return "", err
		}
		if validate != nil {
			if verr := validate(input); verr != nil {
				t.PrintError(ctx, fmt.Sprintf("❌ %v", verr))
				continue
			}
		}
		return input, nil
	}
}

func (t *terminalUI) ShowStyleTable(ctx context.Context, records []styles.Record) {
	if len(records) == 0 {
		return
	}
	fmt.Println(renderStyleTable(records))
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(t.render(infoStyle, s))
}

func (t *terminalUI) PrintSuccess(ctx context.Context, s string) {
	fmt.Println(t.render(successStyle, s))
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, t.render(errorStyle, s))
}
