package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-site/pkg/clients/formrelay"
	"portfolio-site/pkg/models"
	"portfolio-site/pkg/utils"
)

var (
	ErrInvalidPayload     = errors.New("invalid contact form payload")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrResetNotAllowed    = errors.New("reset is only allowed after a successful submission")
)

// DefaultRelayTimeout bounds a single relay call when none is configured
const DefaultRelayTimeout = 15 * time.Second

// SubmissionController defines the lifecycle of contact form submissions
type SubmissionController interface {
	Submit(ctx context.Context, data models.ContactFormData) (models.SubmissionState, error)
	Reset() (models.SubmissionState, error)
	State() models.SubmissionState
}

type submissionControllerImpl struct {
	relay   formrelay.Client
	form    *ContactForm
	logger  *zap.Logger
	timeout time.Duration

	mu    sync.Mutex
	state models.SubmissionState
}

// NewSubmissionController creates a controller in the idle state.
// form may be nil when there are no field values to clear.
func NewSubmissionController(
	relay formrelay.Client,
	form *ContactForm,
	logger *zap.Logger,
	timeout time.Duration,
) SubmissionController {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultRelayTimeout
	}
	return &submissionControllerImpl{
		relay:   relay,
		form:    form,
		logger:  logger,
		timeout: timeout,
		state:   models.IdleState,
	}
}

// Submit dispatches one attempt and blocks until it settles.
// Relay failures are reported through the returned state, never as an error;
// the error is only set when no attempt was dispatched.
func (c *submissionControllerImpl) Submit(ctx context.Context, data models.ContactFormData) (models.SubmissionState, error) {
	payload := data.Trimmed()

	c.mu.Lock()
	if c.state.Submitting() {
		state := c.state
		c.mu.Unlock()
		return state, ErrSubmissionInFlight
	}

	// The form holds what was typed, valid or not, and only for an accepted attempt
	if c.form != nil {
		c.form.Populate(payload)
	}
	if err := payload.Validate(); err != nil {
		state := c.state
		c.mu.Unlock()
		return state, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	c.state = models.SubmissionState{Status: models.StatusSubmitting}
	c.mu.Unlock()

	log := c.logger.With(
		zap.String("attempt", uuid.NewString()),
		zap.String("sender", utils.RedactEmail(payload.Email)),
	)
	log.Debug("Submitting contact form", zap.String("project_type", payload.ProjectType))

	relayCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	err := c.relay.Submit(relayCtx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// Fields are left untouched so the visitor can retry without retyping
		c.state = models.SubmissionState{Status: models.StatusError}
		log.Warn("Contact submission failed",
			zap.String("failure", classifyFailure(err)),
			zap.Error(err),
		)
		return c.state, nil
	}

	c.state = models.SubmissionState{Status: models.StatusSuccess}
	if c.form != nil {
		c.form.Clear()
	}
	log.Info("Contact submission delivered")
	return c.state, nil
}

// Reset returns a successful form to idle ("send another message").
// From any other state it changes nothing.
func (c *submissionControllerImpl) Reset() (models.SubmissionState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Succeeded() {
		return c.state, ErrResetNotAllowed
	}
	c.state = models.IdleState
	return c.state, nil
}

func (c *submissionControllerImpl) State() models.SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// classifyFailure names the underlying cause for logs only; visitors always
// see the same message.
func classifyFailure(err error) string {
	var relayErr *formrelay.RelayError
	switch {
	case errors.As(err, &relayErr):
		return "rejected"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "transport"
	}
}
