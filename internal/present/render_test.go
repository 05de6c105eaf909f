package present

import (
	"strings"
	"testing"

	"github.com/spigell/cv-matcher/internal/workflow"
	"github.com/stretchr/testify/assert"
)

func TestRenderWarningSupersedesResults(t *testing.T) {
	r := NewRenderer(80)
	out := r.Render(Screen{
		FileName: "notes.txt",
		Warning:  &Warning{Title: WarningTitle, Message: "Unsupported file format"},
	})

	assert.Contains(t, out, WarningTitle)
	assert.Contains(t, out, "Unsupported file format")
	assert.NotContains(t, out, resultsHeading)
}

func TestRenderCards(t *testing.T) {
	r := NewRenderer(100)
	out := r.Render(Screen{
		FileName: "resume.pdf",
		Results: &Results{Cards: []Card{
			{
				Rank: 1, JobTitle: "Backend Engineer", Badge: "82%", BadgeTier: TierHigh,
				Bars: []Bar{
					newBar(LabelGeneral, 0.82),
					newBar(LabelSkills, 0.9),
					newBar(LabelExperience, 0.7),
				},
				Summary: "Strong fit",
			},
			{Rank: 2, JobTitle: "QA Tester", Badge: "40%", BadgeTier: TierStandard, Summary: "Consider QA roles"},
		}},
	})

	assert.Contains(t, out, resultsHeading)
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "82% match")
	assert.Contains(t, out, "90%")
	assert.Contains(t, out, "70%")
	assert.Contains(t, out, "Strong fit")
	assert.Less(t, strings.Index(out, "Backend Engineer"), strings.Index(out, "QA Tester"))
}

func TestRenderEmptyResults(t *testing.T) {
	out := NewRenderer(80).Render(Screen{Results: &Results{}})
	assert.Contains(t, out, emptyResults)
}

func TestRenderErrorAndBusy(t *testing.T) {
	r := NewRenderer(80)

	out := r.Render(Screen{Error: workflow.MessageSystemError})
	assert.Contains(t, out, workflow.MessageSystemError)

	r.BusyGlyph = "*"
	out = r.Render(Screen{Busy: true, FileName: "resume.pdf"})
	assert.Contains(t, out, "* "+busyText)
	assert.Contains(t, out, "resume.pdf")
}

func TestRenderControls(t *testing.T) {
	r := NewRenderer(80)
	assert.NotContains(t, r.Render(Screen{}), "[enter]")

	r.Controls = true
	out := r.Render(Screen{ChooserEnabled: true})
	assert.Contains(t, out, "[o] choose file")
	assert.Contains(t, out, "[enter] match")
}

func TestNewRendererWidth(t *testing.T) {
	assert.Equal(t, defaultWidth, NewRenderer(0).Width)
	assert.Equal(t, minWidth, NewRenderer(10).Width)
	assert.Equal(t, 120, NewRenderer(120).Width)
}

func TestTierColor(t *testing.T) {
	assert.Equal(t, colorGood, TierColor(TierGood))
	assert.Equal(t, colorMedium, TierColor(TierMedium))
	assert.Equal(t, colorLow, TierColor(TierLow))
}

func TestSetWidthClamps(t *testing.T) {
	r := NewRenderer(100)

	for _, width := range []int{1, 0, -3} {
		r.SetWidth(width)
		assert.GreaterOrEqual(t, r.Width, minWidth, "width %d", width)
		assert.NotEmpty(t, r.Render(Screen{Results: &Results{Cards: []Card{{Rank: 1, JobTitle: "SRE", Bars: []Bar{newBar(LabelGeneral, 0.6)}}}}}))
	}

	r.SetWidth(120)
	assert.Equal(t, 120, r.Width)
}
