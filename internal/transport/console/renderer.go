package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"wallet_checker/internal/domain/entity"
)

const (
	addressPrefixLen = 16
	ellipsis         = "..."

	glyphEligible   = "✓"
	glyphIneligible = "✗"

	clearScreen = "\033[H\033[2J"
	clearLine   = "\r\033[K"
)

// Renderer writes the human readable report. In interactive mode the screen
// is cleared and progress is redrawn in place; otherwise every progress step
// is printed on its own line.
type Renderer struct {
	out         io.Writer
	title       string
	interactive bool
	pending     bool
	colors      palette
}

type palette struct {
	title    *color.Color
	ok       *color.Color
	fail     *color.Color
	header   *color.Color
	total    *color.Color
	eligible *color.Color
	points   *color.Color
}

func (p palette) all() []*color.Color {
	return []*color.Color{p.title, p.ok, p.fail, p.header, p.total, p.eligible, p.points}
}

func NewRenderer(out io.Writer, chain string, interactive, colored bool) *Renderer {
	r := &Renderer{
		out:         out,
		title:       chain + " Wallet Checker",
		interactive: interactive,
		colors: palette{
			title:    color.New(color.FgBlue, color.Bold),
			ok:       color.New(color.FgGreen),
			fail:     color.New(color.FgRed),
			header:   color.New(color.FgCyan),
			total:    color.New(color.FgYellow),
			eligible: color.New(color.FgGreen),
			points:   color.New(color.FgMagenta),
		},
	}

	if !colored {
		for _, c := range r.colors.all() {
			c.DisableColor()
		}
	}

	return r
}

// NewStdoutRenderer detects whether stdout is a terminal. Colour additionally
// honours NO_COLOR through fatih/color.
func NewStdoutRenderer(chain string) *Renderer {
	fd := os.Stdout.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	return NewRenderer(color.Output, chain, interactive, interactive && !color.NoColor)
}

func (r *Renderer) Banner() {
	if r.interactive {
		fmt.Fprint(r.out, clearScreen)
	}

	fmt.Fprintf(r.out, "\n%s\n\n", r.colors.title.Sprint("🔍 "+r.title))
}

func (r *Renderer) Reading(path string) {
	r.step("Reading " + path)
}

func (r *Renderer) Progress(done, total int) {
	r.step(fmt.Sprintf("Checking wallet %d/%d", done, total))
}

func (r *Renderer) Completed() {
	r.finish(r.colors.ok.Sprint("✔") + " Check completed")
}

func (r *Renderer) Failure(err error) {
	r.finish(r.colors.fail.Sprint("✖ Error: " + err.Error()))
}

func (r *Renderer) Interrupted(checked, total int) {
	fmt.Fprintf(r.out, "%s\n\n", r.colors.fail.Sprintf("Interrupted: %d of %d wallets checked", checked, total))
}

func (r *Renderer) Results(results []entity.EligibilityResult, summary entity.Summary) {
	fmt.Fprintln(r.out)
	r.table(results)

	fmt.Fprintf(r.out, "\n%s\n", r.colors.header.Sprint("📊 Summary:"))
	fmt.Fprintf(r.out, "Total Wallets: %s\n", r.colors.total.Sprint(summary.Total))
	fmt.Fprintf(r.out, "Eligible: %s\n", r.colors.eligible.Sprint(summary.Eligible))

	if summary.Failed > 0 {
		fmt.Fprintf(r.out, "Failed: %s\n", r.colors.fail.Sprint(summary.Failed))
	}

	fmt.Fprintf(r.out, "Total Points: %s\n\n", r.colors.points.Sprint(summary.TotalPoints))
}

func (r *Renderer) step(text string) {
	if !r.interactive {
		fmt.Fprintln(r.out, "- "+text)
		return
	}

	fmt.Fprint(r.out, clearLine+"- "+text)
	r.pending = true
}

func (r *Renderer) finish(text string) {
	if r.interactive && r.pending {
		fmt.Fprint(r.out, clearLine)
		r.pending = false
	}

	fmt.Fprintln(r.out, text)
}

// ShortAddress keeps the first 16 characters and always appends an ellipsis.
func ShortAddress(address string) string {
	if utf8.RuneCountInString(address) > addressPrefixLen {
		address = string([]rune(address)[:addressPrefixLen])
	}

	return address + ellipsis
}

type column struct {
	title  string
	center bool
}

//nolint:gochecknoglobals
var columns = []column{
	{title: "WALLET"},
	{title: "ELIGIBLE", center: true},
	{title: "POINTS", center: true},
}

type cell struct {
	text  string
	paint *color.Color
}

func (r *Renderer) table(results []entity.EligibilityResult) {
	rows := make([][]cell, 0, len(results))

	for _, result := range results {
		glyph := cell{text: glyphIneligible, paint: r.colors.fail}
		if result.Eligible {
			glyph = cell{text: glyphEligible, paint: r.colors.ok}
		}

		rows = append(rows, []cell{
			{text: ShortAddress(result.Address)},
			glyph,
			{text: fmt.Sprint(result.Points)},
		})
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = utf8.RuneCountInString(col.title)
	}

	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(c.text))
		}
	}

	header := make([]cell, len(columns))
	for i, col := range columns {
		header[i] = cell{text: col.title}
	}

	var b strings.Builder

	b.WriteString(border("┌", "┬", "┐", widths))
	b.WriteString(line(header, widths))
	b.WriteString(border("├", "┼", "┤", widths))

	for _, row := range rows {
		b.WriteString(line(row, widths))
	}

	b.WriteString(border("└", "┴", "┘", widths))

	fmt.Fprint(r.out, b.String())
}

func border(left, middle, right string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}

	return left + strings.Join(parts, middle) + right + "\n"
}

// line pads on the plain text and paints afterwards so escape sequences do
// not skew the column widths.
func line(cells []cell, widths []int) string {
	parts := make([]string, len(cells))

	for i, c := range cells {
		gap := widths[i] - utf8.RuneCountInString(c.text)
		left, right := 0, gap

		if columns[i].center {
			left = gap / 2
			right = gap - left
		}

		text := c.text
		if c.paint != nil {
			text = c.paint.Sprint(text)
		}

		parts[i] = " " + strings.Repeat(" ", left) + text + strings.Repeat(" ", right) + " "
	}

	return "│" + strings.Join(parts, "│") + "│\n"
}
