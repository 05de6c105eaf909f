package present

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spigell/cv-matcher/internal/matchservice"
	"github.com/spigell/cv-matcher/internal/selection"
	"github.com/spigell/cv-matcher/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runScenario(t *testing.T, status int, body string) Screen {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			defer file.Close()
			assert.Equal(t, "resume.pdf", header.Filename)
		}
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	client, err := matchservice.New(zap.NewNop(), server.URL, 0)
	require.NoError(t, err)

	ctrl := workflow.NewController(selection.NewManager(), client, zap.NewNop())
	ctrl.SelectFile(selection.NewFile("resume.pdf", []byte("%PDF-1.4")))

	state := ctrl.Submit(context.Background())
	return Present(state, ctrl.Selection().Current())
}

func TestScenarioRankedResult(t *testing.T) {
	s := runScenario(t, http.StatusOK,
		`[{"job_title":"Backend Engineer","general_score":0.82,"skill_match":0.9,"experience_match":0.7,"report_summary":"Strong fit"}]`)

	assert.Nil(t, s.Warning)
	require.NotNil(t, s.Results)
	require.Len(t, s.Results.Cards, 1)

	card := s.Results.Cards[0]
	assert.Equal(t, 1, card.Rank)
	assert.Equal(t, "82%", card.Badge)
	assert.Equal(t, TierHigh, card.BadgeTier)

	var percents []string
	var tiers []Tier
	for _, bar := range card.Bars {
		percents = append(percents, bar.Percent)
		tiers = append(tiers, bar.Tier)
	}
	assert.Equal(t, []string{"82%", "90%", "70%"}, percents)
	assert.Equal(t, []Tier{TierGood, TierGood, TierMedium}, tiers)
	assert.Equal(t, "Strong fit", card.Summary)
}

func TestScenarioInvalidDocument(t *testing.T) {
	s := runScenario(t, http.StatusOK,
		`[{"job_title":"","general_score":0,"skill_match":0,"experience_match":0,"report_summary":"Unsupported file format"}]`)

	assert.Nil(t, s.Results)
	require.NotNil(t, s.Warning)
	assert.Equal(t, "Unsupported file format", s.Warning.Message)
}

func TestScenarioFailuresShowGenericMessage(t *testing.T) {
	badStatus := runScenario(t, http.StatusBadRequest, `{"detail":"CV okunamaz durumda."}`)
	malformed := runScenario(t, http.StatusOK, `not json`)
	nullScore := runScenario(t, http.StatusOK,
		`[{"job_title":"Backend Engineer","general_score":null,"skill_match":0.9,"experience_match":0.7,"report_summary":"Strong fit"}]`)

	for _, s := range []Screen{badStatus, malformed, nullScore} {
		assert.Equal(t, workflow.MessageSystemError, s.Error)
		assert.NotContains(t, s.Error, "okunamaz")
		assert.Nil(t, s.Results)
		assert.Nil(t, s.Warning)
	}
}
