package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/breathe-hr/cursorlink/api"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	title          = "Breathe HR MCP Server - Cursor Configuration"
	separatorWidth = 45
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	stepStyle     = lipgloss.NewStyle().Bold(true)
	reminderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// printer writes the configuration instructions. Only headings are styled so the
// JSON block and the link stay copyable.
type printer struct {
	w     io.Writer
	color bool
	err   error
}

func newPrinter(w io.Writer, color bool) *printer {
	return &printer{w: w, color: color}
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) styled(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p *printer) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

// instructions prints the title, the JSON block, the link and the API key reminder
func (p *printer) instructions(res *api.Result) error {
	p.println(p.styled(titleStyle, title))
	p.println(strings.Repeat("=", separatorWidth))
	p.println("")
	p.println(p.styled(stepStyle, "1. Copy this configuration to your Cursor settings:"))
	p.println(res.JSON)
	p.println("")
	p.println(p.styled(stepStyle, "2. Or click this link to automatically configure Cursor:"))
	p.println(res.Link)
	if res.Config.HasPlaceholder() {
		p.println("")
		p.println(p.styled(reminderStyle,
			fmt.Sprintf("3. Don't forget to replace '%s' with your actual API key!", api.APIKeyPlaceholder)))
	}
	return p.err
}
