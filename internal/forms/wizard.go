package forms

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Status is the submission state of a wizard session.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Sentinel errors forming the closed submission error taxonomy. A Submitter
// must wrap every failure in exactly one of these; the wizard maps them to
// user-facing messages and nothing else reaches the presentation layer.
var (
	ErrDuplicate            = errors.New("email already registered")
	ErrBackendMisconfigured = errors.New("record store misconfigured")
	ErrTransport            = errors.New("submission failed")
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not completed yet.
var ErrSubmitInFlight = errors.New("submission already in flight")

// ErrStepInvalid is returned by Next when the current step fails validation.
// The step result carries the per-field details.
var ErrStepInvalid = errors.New("step validation failed")

// Submitter delivers a completed answer payload to the record store and
// returns the created record's id.
type Submitter interface {
	Submit(ctx context.Context, kind RecordKind, payload map[string]any) (string, error)
}

// Wizard is the step sequencer for one form session. It owns the answers,
// gates forward navigation on step validation, and drives submission on the
// last step. All methods are safe for concurrent use; a session that has been
// closed ignores any late submission result.
type Wizard struct {
	mu        sync.Mutex
	schema    *Schema
	answers   *Answers
	step      int
	status    Status
	errMsg    string
	gen       int // bumped on Reset/Close so stale completions are dropped
	closed    bool
	recordID  string
	submitter Submitter
	onSuccess func()
	// delay between showing the success state and resetting the session
	resetDelay time.Duration
}

// WizardOption configures a Wizard.
type WizardOption func(*Wizard)

// WithResetDelay overrides the pause between a successful submission and the
// automatic reset of the session.
func WithResetDelay(d time.Duration) WizardOption {
	return func(w *Wizard) { w.resetDelay = d }
}

// WithSuccessCallback registers a callback invoked after a successful
// submission, before the delayed reset fires.
func WithSuccessCallback(fn func()) WizardOption {
	return func(w *Wizard) { w.onSuccess = fn }
}

// NewWizard creates a session at step 0 with empty answers and status idle.
func NewWizard(schema *Schema, submitter Submitter, opts ...WizardOption) *Wizard {
	w := &Wizard{
		schema:     schema,
		answers:    NewAnswers(schema),
		status:     StatusIdle,
		submitter:  submitter,
		resetDelay: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Answers exposes the session's answer set for field edits.
func (w *Wizard) Answers() *Answers { return w.answers }

// Step returns the current step index.
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Status returns the current submission status.
func (w *Wizard) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// ErrorMessage returns the user-facing message of the last failed submission.
func (w *Wizard) ErrorMessage() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

// RecordID returns the id assigned by the record store after a successful
// submission, or "" before one.
func (w *Wizard) RecordID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.recordID
}

// CurrentStep returns the definition of the step the session is on.
func (w *Wizard) CurrentStep() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.schema.Steps[w.step]
}

// Next validates the current step and advances. On the last step it does not
// advance; it submits instead. A validation failure leaves the step index
// unchanged and reports the failing fields through the returned StepResult.
func (w *Wizard) Next(ctx context.Context) (StepResult, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return StepResult{}, errors.New("session closed")
	}
	if w.status == StatusSubmitting {
		w.mu.Unlock()
		return StepResult{}, ErrSubmitInFlight
	}

	result := ValidateStep(w.schema.Steps[w.step], w.answers)
	if !result.Ok() {
		w.mu.Unlock()
		return result, ErrStepInvalid
	}

	if w.step < len(w.schema.Steps)-1 {
		w.step++
		w.mu.Unlock()
		return result, nil
	}

	// Last step: transition to submitting instead of advancing. The status
	// flip under the lock is the double-submit guard.
	w.status = StatusSubmitting
	w.errMsg = ""
	gen := w.gen
	payload := w.answers.Payload()
	kind := w.schema.Kind
	w.mu.Unlock()

	id, err := w.submitter.Submit(ctx, kind, payload)
	w.complete(gen, id, err)
	return result, err
}

// Previous steps back without re-validating. It is a no-op on the first step.
func (w *Wizard) Previous() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > 0 && w.status != StatusSubmitting {
		w.step--
	}
}

// Reset returns the session to its freshly-constructed state.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

func (w *Wizard) resetLocked() {
	w.gen++
	w.step = 0
	w.status = StatusIdle
	w.errMsg = ""
	w.recordID = ""
	w.answers.Reset()
}

// Close discards the session. A submission still in flight is allowed to
// finish on the wire, but its result no longer touches this session.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.gen++
}

// complete records the outcome of a submission, unless the session was reset
// or closed while the call was in flight.
func (w *Wizard) complete(gen int, id string, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || gen != w.gen {
		return
	}

	if err != nil {
		w.status = StatusError
		w.errMsg = submitErrorMessage(err)
		return
	}

	w.recordID = id
	w.status = StatusSuccess
	if w.onSuccess != nil {
		go w.onSuccess()
	}
	resetGen := w.gen
	time.AfterFunc(w.resetDelay, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if !w.closed && w.gen == resetGen {
			w.resetLocked()
		}
	})
}

// submitErrorMessage maps the submission error taxonomy onto the messages
// shown next to the final step.
func submitErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrDuplicate):
		return "Dit emailadres is al geregistreerd"
	case errors.Is(err, ErrBackendMisconfigured):
		return "Er is een probleem met de server. Neem contact op met support."
	default:
		return "Er is iets misgegaan bij het verzenden. Probeer het opnieuw."
	}
}
