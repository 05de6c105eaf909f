package workflow

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/spigell/cv-matcher/internal/logger"
	"github.com/spigell/cv-matcher/internal/matchservice"
	"github.com/spigell/cv-matcher/internal/selection"
	"go.uber.org/zap"
)

var (
	ErrNoFileSelected = errors.New("no file selected")
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// Matcher sends one document to the matching service.
type Matcher interface {
	Match(ctx context.Context, file *selection.File) ([]matchservice.MatchResult, error)
}

// Attempt is one submission. It snapshots the file that is sent so a later
// re-selection does not change what the resolution refers to.
type Attempt struct {
	ID   string
	File *selection.File
	seq  uint64
}

// Controller is the single writer of the workflow state.
type Controller struct {
	mu        sync.Mutex
	selection *selection.Manager
	matcher   Matcher
	logger    *zap.Logger

	state    State
	seq      uint64
	inflight uint64
}

func NewController(sel *selection.Manager, matcher Matcher, log *zap.Logger) *Controller {
	if sel == nil {
		sel = selection.NewManager()
	}

	return &Controller{
		selection: sel,
		matcher:   matcher,
		logger:    logger.WithFields(log),
		state:     Idle{},
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Selection() *selection.Manager {
	return c.selection
}

// Busy reports whether a submission is in flight.
func (c *Controller) Busy() bool {
	_, busy := c.State().(Submitting)
	return busy
}

// CanSubmit reports whether the submit control should be enabled.
func (c *Controller) CanSubmit() bool {
	return c.selection.SubmitEnabled(c.Busy())
}

// SelectFile replaces the selected file and clears a surfaced error. An in-flight
// submission and shown results are left alone.
func (c *Controller) SelectFile(f *selection.File) {
	if f == nil {
		return
	}

	c.selection.Select(f)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, failed := c.state.(Failed); failed {
		c.state = Idle{}
	}

	c.logger.Debug("file selected",
		zap.String(logger.FieldFile, f.Name),
		zap.String("mime_type", f.MIMEType),
		zap.Int("size", f.Size()),
	)
}

// Begin starts a submission. Without a file the state becomes Failed with the
// NoFileSelected kind and no request must be issued.
func (c *Controller) Begin() (*Attempt, error) {
	file := c.selection.Current()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.state.(Submitting); busy {
		return nil, ErrSubmitInFlight
	}

	if file == nil {
		c.state = Failed{Kind: NoFileSelected, Message: MessageNoFileSelected}
		return nil, ErrNoFileSelected
	}

	c.seq++
	c.inflight = c.seq
	c.state = Submitting{File: file.Name}

	attempt := &Attempt{
		ID:   uuid.NewString(),
		File: file,
		seq:  c.seq,
	}

	c.logger.Info("submitting file",
		zap.String(logger.FieldAttempt, attempt.ID),
		zap.String(logger.FieldFile, file.Name),
	)

	return attempt, nil
}

// Execute sends the attempt's file and resolves the attempt with the outcome.
func (c *Controller) Execute(ctx context.Context, attempt *Attempt) State {
	if c.matcher == nil {
		return c.Resolve(attempt, nil, errors.New("matcher is not configured"))
	}

	results, err := c.matcher.Match(ctx, attempt.File)
	return c.Resolve(attempt, results, err)
}

// Submit runs a whole submission synchronously.
func (c *Controller) Submit(ctx context.Context) State {
	attempt, err := c.Begin()
	if err != nil {
		return c.State()
	}

	return c.Execute(ctx, attempt)
}

// Resolve applies the result of an attempt. Failures are logged and replaced by
// a generic message; the cause never reaches the state.
func (c *Controller) Resolve(attempt *Attempt, results []matchservice.MatchResult, err error) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if attempt == nil || attempt.seq != c.inflight {
		c.logger.Warn("dropping resolution of a stale attempt")
		return c.state
	}
	c.inflight = 0

	log := c.logger.With(
		zap.String(logger.FieldAttempt, attempt.ID),
		zap.String(logger.FieldFile, attempt.File.Name),
	)

	if err != nil {
		log.Error("submission failed", zap.Error(err))
		c.state = Failed{Kind: TransportOrProtocolFailure, Message: MessageSystemError}
		return c.state
	}

	outcome := Classify(results)
	switch o := outcome.(type) {
	case InvalidDocument:
		log.Warn("document could not be analyzed", zap.String("reason", o.Reason))
	case Ranked:
		log.Info("got match results", zap.Int("count", len(o.Results)))
	}

	c.state = Succeeded{Outcome: outcome}
	return c.state
}
