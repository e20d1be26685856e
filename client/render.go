package client

import (
	_ "embed"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"text/template"

	"galtetris/tetris"

	"github.com/charmbracelet/lipgloss"
)

const (
	resetPos    = "\033[H"       // Reset cursor position to 0,0
	clearScreen = "\033[2J\033[H" // Clear the screen and reset the cursor
	cellFmt     = "\x1b[48;2;%d;%d;%dm%s\x1b[0m"
)

//go:embed "layout.tmpl"
var layout string

type templateData struct {
	Config   tetris.Config
	Snapshot *tetris.Snapshot
}

type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	*templateData
}

func newRender(l *slog.Logger, w io.Writer, cfg tetris.Config) (*render, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return &render{
		writer:       w,
		logger:       l,
		template:     tmp,
		templateData: &templateData{Config: cfg},
	}, nil
}

func (r *render) game(s *tetris.Snapshot) {
	r.templateData.Snapshot = s
	fmt.Fprint(r.writer, resetPos)
	if err := r.template.Execute(r.writer, r.templateData); err != nil {
		r.logger.Error("unable to execute template in game()", slog.String("error", err.Error()))
	}
}

func (r *render) reset() {
	fmt.Fprint(r.writer, clearScreen)
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"stack":  stack,
		"border": border,
		"status": status,
	}

	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout.
	l := strings.ReplaceAll(layout, "\n", "\r\n")
	return template.New("layout").Funcs(funcMap).Parse(l)
}

// stack renders every row of the board, falling piece included, as two
// characters per cell.
func stack(td *templateData) []string {
	if td.Snapshot == nil {
		return nil
	}
	rendered := make([]string, 0, td.Config.Rows)
	for _, row := range td.Snapshot.Overlay() {
		var b strings.Builder
		for _, c := range row {
			if c.Filled {
				b.WriteString(paint(c.Color, "[]"))
				continue
			}
			b.WriteString(paint(td.Config.Background, "  "))
		}
		rendered = append(rendered, b.String())
	}
	return rendered
}

func border(td *templateData) string {
	return "+" + strings.Repeat("-", td.Config.Cols*2) + "+"
}

// status renders the score panel under the board.
func status(td *templateData) string {
	if td.Snapshot == nil {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(hex(td.Config.GridLine)).
		Padding(0, 1).
		MarginLeft(2)
	lines := []string{fmt.Sprintf("Score: %d", td.Snapshot.Score)}
	if td.Snapshot.GameOver {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Game Over :)"))
	}
	out := style.Render(strings.Join(lines, "\n"))
	return strings.ReplaceAll(out, "\n", "\r\n")
}

func paint(c color.Color, s string) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf(cellFmt, rgba.R, rgba.G, rgba.B, s)
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
