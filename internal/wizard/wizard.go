package wizard

import (
	"context"
	"errors"
	"sync"
)

// FieldErrors maps field name to a human readable message. It is fully
// replaced on every validation pass, never merged.
type FieldErrors map[string]string

// Form is the mutable bag of values a flow accumulates across steps.
type Form map[string]any

// Str returns the trimmed string stored under key, or "".
func (f Form) Str(key string) string {
	if v, ok := f[key].(string); ok {
		return v
	}
	return ""
}

// Strs returns the string slice stored under key. JSON-decoded bodies
// arrive as []any, so both representations are accepted.
func (f Form) Strs(key string) []string {
	switch v := f[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Int returns the integer stored under key, tolerating JSON numbers.
func (f Form) Int(key string) int {
	switch v := f[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Rule validates one field within a step.
type Rule struct {
	Field   string
	Check   func(Form) bool
	Message string
}

// Step is a named group of rules gating forward progress.
type Step struct {
	Name  string
	Rules []Rule
}

// Result is whatever the flow's submit handler produces (a reference
// number, an itinerary id, ...).
type Result map[string]any

// SubmitFunc performs the flow's single network/persistence action.
type SubmitFunc func(ctx context.Context, form Form) (Result, error)

var (
	// ErrSubmitInFlight is returned when Submit is called while a prior
	// submission has not finished. The caller treats it as a no-op.
	ErrSubmitInFlight = errors.New("submission already in flight")
	// ErrNotOnFinalStep guards Submit being reached early.
	ErrNotOnFinalStep = errors.New("submit is only valid on the final step")
	// ErrAlreadyDone is returned once a controller reached its terminal state.
	ErrAlreadyDone = errors.New("wizard already submitted")
)

// Controller drives a linear wizard over a fixed list of steps. Step numbers
// are 1-indexed and move by exactly one per transition. All mutation goes
// through the controller so concurrent HTTP handlers stay safe.
type Controller struct {
	mu         sync.Mutex
	steps      []Step
	submit     SubmitFunc
	step       int
	form       Form
	errors     FieldErrors
	submitting bool
	done       bool
	result     Result
}

// New builds a controller positioned on step 1 with seed values, typically
// taken from the query string, merged into the form.
func New(steps []Step, submit SubmitFunc, seed Form) *Controller {
	form := Form{}
	for k, v := range seed {
		form[k] = v
	}
	return &Controller{
		steps:  steps,
		submit: submit,
		step:   1,
		form:   form,
		errors: FieldErrors{},
	}
}

// Step reports the current 1-indexed step.
func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// StepName reports the name of the current step.
func (c *Controller) StepName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps[c.step-1].Name
}

// Steps reports the total number of steps.
func (c *Controller) Steps() int { return len(c.steps) }

// Done reports whether the terminal submitted state was reached.
func (c *Controller) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Result returns the submit handler's output once Done.
func (c *Controller) Result() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Errors returns a copy of the last validation pass.
func (c *Controller) Errors() FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := FieldErrors{}
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// Set stores one field value. Values for steps other than the current one
// are retained untouched, so going Back never loses later-step input.
func (c *Controller) Set(field string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form[field] = value
}

// SetAll merges a batch of field values into the form.
func (c *Controller) SetAll(values Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range values {
		c.form[k] = v
	}
}

// Form returns a copy of the accumulated form data.
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := Form{}
	for k, v := range c.form {
		out[k] = v
	}
	return out
}

// Next validates the current step only. On success the step advances by one
// (never past the last step); on failure the step stays put and the errors
// map holds exactly one message per failing rule.
func (c *Controller) Next() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return false
	}
	if !c.validateLocked() {
		return false
	}
	if c.step < len(c.steps) {
		c.step++
	}
	return true
}

// Back retreats one step unconditionally. No validation runs and no form
// data is dropped.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return
	}
	if c.step > 1 {
		c.step--
	}
}

// Submit re-validates the final step and runs the flow's submit handler
// exactly once at a time. A second call while one is in flight returns
// ErrSubmitInFlight without touching the handler. The submitting flag is
// always cleared so the flow can be retried after a failure.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if c.done {
		res := c.result
		c.mu.Unlock()
		return res, ErrAlreadyDone
	}
	if c.step != len(c.steps) {
		c.mu.Unlock()
		return nil, ErrNotOnFinalStep
	}
	if c.submitting {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if !c.validateLocked() {
		errs := c.errors
		c.mu.Unlock()
		return nil, ValidationFailed{Fields: errs}
	}
	c.submitting = true
	form := Form{}
	for k, v := range c.form {
		form[k] = v
	}
	c.mu.Unlock()

	res, err := c.submit(ctx, form)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		return nil, err
	}
	c.done = true
	c.result = res
	return res, nil
}

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

func (c *Controller) validateLocked() bool {
	errs := FieldErrors{}
	for _, rule := range c.steps[c.step-1].Rules {
		if rule.Check != nil && !rule.Check(c.form) {
			if _, seen := errs[rule.Field]; !seen {
				errs[rule.Field] = rule.Message
			}
		}
	}
	c.errors = errs
	return len(errs) == 0
}

// ValidationFailed carries the field errors of a rejected Submit.
type ValidationFailed struct {
	Fields FieldErrors
}

func (v ValidationFailed) Error() string { return "validation failed" }
