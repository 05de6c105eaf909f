package present

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/spigell/cv-matcher/internal/selection"
)

const (
	defaultWidth  = 80
	minWidth      = 40
	labelWidth    = 12
	percentWidth  = 5
	fileNameWidth = 40

	titleText      = "CV Matcher"
	subtitleText   = "Upload your CV and discover the best-fitting jobs."
	busyText       = "Analyzing..."
	resultsHeading = "Results"
	summaryHeading = "AI summary"
	emptyResults   = "No matching positions were returned."
)

// Renderer draws a Screen as terminal text.
type Renderer struct {
	Width  int
	Styles *Styles
	// BusyGlyph is drawn before the busy text, e.g. a spinner frame.
	BusyGlyph string
	// Controls enables key hints for interactive front ends.
	Controls bool
}

func NewRenderer(width int) *Renderer {
	r := &Renderer{Styles: DefaultStyles()}
	r.SetWidth(width)
	return r
}

// SetWidth sets the drawing width. Non-positive widths fall back to the
// default and narrow ones are raised to the minimum.
func (r *Renderer) SetWidth(width int) {
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	r.Width = width
}

func (r *Renderer) Render(s Screen) string {
	var b strings.Builder

	b.WriteString(r.Styles.Title.Render(titleText))
	b.WriteString("\n")
	b.WriteString(r.Styles.Subtitle.Render(subtitleText))
	b.WriteString("\n\n")

	b.WriteString(r.renderSelection(s))

	if s.Busy {
		glyph := r.BusyGlyph
		if glyph == "" {
			glyph = "⟳"
		}
		b.WriteString("\n")
		b.WriteString(glyph + " " + busyText)
		b.WriteString("\n")
	}

	if s.Error != "" {
		b.WriteString("\n")
		b.WriteString(r.Styles.Error.Render("✗ " + s.Error))
		b.WriteString("\n")
	}

	switch {
	case s.Warning != nil:
		b.WriteString("\n")
		b.WriteString(r.renderWarning(s.Warning))
		b.WriteString("\n")
	case s.Results != nil:
		b.WriteString("\n")
		b.WriteString(r.renderResults(s.Results))
	}

	return b.String()
}

func (r *Renderer) renderSelection(s Screen) string {
	name := selection.NoFileLabel
	if s.FileName != "" {
		name = selection.TruncateName(s.FileName, fileNameWidth)
	}

	line := r.Styles.Label.Render("Selected file: ") + name + "\n"
	if !r.Controls {
		return line
	}

	hints := []string{r.control("o", "choose file", s.ChooserEnabled), r.control("enter", "match", s.SubmitEnabled), r.control("q", "quit", true)}
	return line + strings.Join(hints, "  ") + "\n"
}

func (r *Renderer) control(key, label string, enabled bool) string {
	text := fmt.Sprintf("[%s] %s", key, label)
	if enabled {
		return r.Styles.Enabled.Render(text)
	}
	return r.Styles.Muted.Render(text)
}

func (r *Renderer) renderWarning(w *Warning) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		r.Styles.WarnTitle.Render("⚠ "+w.Title),
		"",
		lipgloss.NewStyle().Width(r.innerWidth()-6).Align(lipgloss.Center).Render(w.Message),
	)
	return r.Styles.Warning.Width(r.innerWidth()).Render(body)
}

func (r *Renderer) renderResults(res *Results) string {
	var b strings.Builder

	b.WriteString(r.Styles.Heading.Render("✓ " + resultsHeading))
	b.WriteString("\n")

	if len(res.Cards) == 0 {
		b.WriteString(r.Styles.Muted.Render(emptyResults))
		b.WriteString("\n")
		return b.String()
	}

	for _, card := range res.Cards {
		b.WriteString(r.renderCard(card))
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) renderCard(c Card) string {
	badgeStyle := r.Styles.BadgeStd
	if c.BadgeTier == TierHigh {
		badgeStyle = r.Styles.BadgeHigh
	}

	header := r.Styles.Rank.Render(fmt.Sprintf("#%d", c.Rank)) + " " +
		r.Styles.JobTitle.Render(c.JobTitle) + " " +
		badgeStyle.Render(c.Badge+" match")

	lines := []string{header, ""}
	for _, bar := range c.Bars {
		lines = append(lines, r.renderBar(bar))
	}

	contentWidth := r.innerWidth() - 4
	lines = append(lines,
		"",
		r.Styles.Label.Render(summaryHeading),
		lipgloss.NewStyle().Width(contentWidth).Render(c.Summary),
	)

	return r.Styles.Card.Width(r.innerWidth()).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderBar(bar Bar) string {
	barWidth := r.innerWidth() - 4 - labelWidth - percentWidth - 2
	if barWidth < 10 {
		barWidth = 10
	}

	p := progress.New(
		progress.WithSolidFill(TierColor(bar.Tier)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)

	label := lipgloss.NewStyle().Width(labelWidth).Render(bar.Label)
	percent := lipgloss.NewStyle().Width(percentWidth).Align(lipgloss.Right).Render(bar.Percent)

	return label + " " + p.ViewAs(clamp(bar.Score)) + " " + percent
}

func (r *Renderer) innerWidth() int {
	return r.Width - 2
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
