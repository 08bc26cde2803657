package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-site/pkg/models"
	"portfolio-site/pkg/services"
)

// SessionCookie carries the visitor's contact session ID
const SessionCookie = "contact_session"

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	sessions     *services.SessionStore
	contactEmail string
}

// NewHandlers creates a new Handlers instance
func NewHandlers(sessions *services.SessionStore, contactEmail string) *Handlers {
	return &Handlers{
		sessions:     sessions,
		contactEmail: contactEmail,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ContactPage renders the contact section; visitors without a session see an empty form
func (h *Handlers) ContactPage(c *gin.Context) {
	h.respond(c, http.StatusOK, h.view(c), nil)
}

// ContactState reports the caller's submission state
func (h *Handlers) ContactState(c *gin.Context) {
	view := h.view(c)
	c.JSON(http.StatusOK, gin.H{
		"state":  view.state,
		"values": view.values,
	})
}

// HandleContactSubmission takes the posted fields and relays them.
// This is the only route that starts a session.
func (h *Handlers) HandleContactSubmission(c *gin.Context) {
	id, _ := c.Cookie(SessionCookie)
	session, err := h.sessions.GetOrCreate(id)
	if err != nil {
		_ = c.Error(err)
		h.respond(c, http.StatusServiceUnavailable, sessionView{state: models.IdleState}, nil)
		return
	}
	h.setCookie(c, session)

	var data models.ContactFormData
	if err := c.ShouldBind(&data); err != nil {
		_ = c.Error(err)
		h.respond(c, http.StatusBadRequest, viewOf(session), []string{"body"})
		return
	}

	state, err := session.Controller.Submit(c.Request.Context(), data)
	switch {
	case errors.Is(err, services.ErrSubmissionInFlight):
		h.respond(c, http.StatusConflict, viewOf(session), nil)
		return
	case errors.Is(err, services.ErrInvalidPayload):
		_ = c.Error(err)
		h.respond(c, http.StatusBadRequest, viewOf(session), models.InvalidFields(err))
		return
	}

	status := http.StatusOK
	if state.Failed() {
		status = http.StatusBadGateway
	}
	h.respond(c, status, viewOf(session), nil)
}

// HandleContactReset is the "send another message" action
func (h *Handlers) HandleContactReset(c *gin.Context) {
	session := h.lookup(c)
	if session == nil {
		h.respond(c, http.StatusConflict, sessionView{state: models.IdleState}, nil)
		return
	}

	if _, err := session.Controller.Reset(); err != nil {
		h.respond(c, http.StatusConflict, viewOf(session), nil)
		return
	}
	h.respond(c, http.StatusOK, viewOf(session), nil)
}

// sessionView is the state and field values a response renders
type sessionView struct {
	state  models.SubmissionState
	values models.ContactFormData
}

func viewOf(session *services.Session) sessionView {
	return sessionView{
		state:  session.Controller.State(),
		values: session.Form.Snapshot(),
	}
}

// view renders the caller's session, or an idle empty form when there is none
func (h *Handlers) view(c *gin.Context) sessionView {
	if session := h.lookup(c); session != nil {
		return viewOf(session)
	}
	return sessionView{state: models.IdleState}
}

// lookup resolves an existing session from the cookie without creating one
func (h *Handlers) lookup(c *gin.Context) *services.Session {
	id, err := c.Cookie(SessionCookie)
	if err != nil || id == "" {
		return nil
	}
	session, err := h.sessions.Get(id)
	if err != nil {
		return nil
	}
	h.setCookie(c, session)
	return session
}

// setCookie issues or refreshes the cookie so it lives as long as the session
func (h *Handlers) setCookie(c *gin.Context, session *services.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, session.ID, int(h.sessions.TTL()/time.Second), "/", "", c.Request.TLS != nil, true)
}

func (h *Handlers) respond(c *gin.Context, status int, view sessionView, invalid []string) {
	if wantsJSON(c) {
		body := gin.H{
			"state": view.state,
		}
		switch {
		case len(invalid) > 0:
			body["error"] = "Missing or invalid fields"
			body["fields"] = invalid
		case status == http.StatusConflict:
			body["error"] = conflictMessage(view.state)
		case status == http.StatusServiceUnavailable:
			body["error"] = "Please try again shortly"
		}
		c.JSON(status, body)
		return
	}

	c.HTML(status, contactTemplateName, newContactView(view.state, view.values, invalid, h.contactEmail))
}

func wantsJSON(c *gin.Context) bool {
	if c.ContentType() == gin.MIMEJSON {
		return true
	}
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func conflictMessage(state models.SubmissionState) string {
	if state.Submitting() {
		return "A submission is already in progress"
	}
	return "Nothing to reset"
}
