// Package present maps workflow state to what the user sees. Present is pure;
// Renderer draws its output for a terminal.
package present

import (
	"github.com/spigell/cv-matcher/internal/matchservice"
	"github.com/spigell/cv-matcher/internal/selection"
	"github.com/spigell/cv-matcher/internal/workflow"
)

const (
	LabelGeneral    = "General fit"
	LabelSkills     = "Skills"
	LabelExperience = "Experience"

	WarningTitle = "Document could not be analyzed"
)

// Screen is the complete visible output for one state.
type Screen struct {
	FileName       string
	ChooserEnabled bool
	SubmitEnabled  bool
	Busy           bool

	// Error is set only for Failed.
	Error string
	// Warning is set only for the invalid document outcome and replaces Results.
	Warning *Warning
	// Results is set only for a ranked outcome, possibly with no cards.
	Results *Results
}

type Warning struct {
	Title   string
	Message string
}

type Results struct {
	Cards []Card
}

// Card is one ranked match, Rank starting at 1.
type Card struct {
	Rank      int
	JobTitle  string
	Badge     string
	BadgeTier Tier
	Bars      []Bar
	Summary   string
}

type Bar struct {
	Label   string
	Score   float64
	Percent string
	Tier    Tier
}

// Present builds the screen for state. file is the current selection, or nil.
func Present(state workflow.State, file *selection.File) Screen {
	screen := Screen{ChooserEnabled: true}
	if file != nil {
		screen.FileName = file.Name
	}

	switch s := state.(type) {
	case workflow.Submitting:
		screen.Busy = true
	case workflow.Failed:
		screen.Error = s.Message
	case workflow.Succeeded:
		switch o := s.Outcome.(type) {
		case workflow.InvalidDocument:
			screen.Warning = &Warning{Title: WarningTitle, Message: o.Reason}
		case workflow.Ranked:
			screen.Results = &Results{Cards: cards(o.Results)}
		}
	case workflow.Idle:
	}

	screen.SubmitEnabled = file != nil && !screen.Busy

	return screen
}

func cards(results []matchservice.MatchResult) []Card {
	out := make([]Card, 0, len(results))
	for idx, r := range results {
		out = append(out, Card{
			Rank:      idx + 1,
			JobTitle:  r.JobTitle,
			Badge:     FormatScore(r.GeneralScore),
			BadgeTier: BadgeTier(r.GeneralScore),
			Bars: []Bar{
				newBar(LabelGeneral, r.GeneralScore),
				newBar(LabelSkills, r.SkillMatch),
				newBar(LabelExperience, r.ExperienceMatch),
			},
			Summary: r.ReportSummary,
		})
	}
	return out
}

func newBar(label string, score float64) Bar {
	return Bar{
		Label:   label,
		Score:   score,
		Percent: FormatScore(score),
		Tier:    BarTier(score),
	}
}
