package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourapi/internal/http/middleware"
	"tourapi/internal/utils"
	"tourapi/internal/wizard"
)

// wizardState is the snapshot returned after every wizard operation.
type wizardState struct {
	SessionID string             `json:"sessionId"`
	Flow      string             `json:"flow"`
	Step      int                `json:"step"`
	StepName  string             `json:"stepName"`
	Steps     int                `json:"steps"`
	Errors    wizard.FieldErrors `json:"errors"`
	Done      bool               `json:"done"`
	Result    wizard.Result      `json:"result,omitempty"`
}

func snapshot(id, flow string, ctrl *wizard.Controller) wizardState {
	return wizardState{
		SessionID: id,
		Flow:      flow,
		Step:      ctrl.Step(),
		StepName:  ctrl.StepName(),
		Steps:     ctrl.Steps(),
		Errors:    ctrl.Errors(),
		Done:      ctrl.Done(),
		Result:    ctrl.Result(),
	}
}

// StartWizard opens a wizard session for a flow. Extra query params seed
// the form, e.g. a destination preselected from a listing page.
// POST /api/wizards?flow=inquiry&destination=...
func (a *API) StartWizard(c *gin.Context) {
	flow := c.Query("flow")

	seed := wizard.Form{}
	for key, vals := range c.Request.URL.Query() {
		if key == "flow" {
			continue
		}
		if len(vals) > 0 {
			seed[key] = vals[0]
		}
	}

	ctrl, ok := a.Flows.New(flow, seed)
	if !ok {
		RespondError(c, http.StatusNotFound, "unknown wizard flow", nil)
		return
	}
	id := a.Sessions.Create(flow, ctrl)
	utils.LogEvent(middleware.GetRequestID(c), "wizard", "start", "flow="+flow)
	c.JSON(http.StatusCreated, snapshot(id, flow, ctrl))
}

// GetWizard returns the current state of a session.
// GET /api/wizards/:id
func (a *API) GetWizard(c *gin.Context) {
	id := c.Param("id")
	ctrl, flow, err := a.Sessions.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot(id, flow, ctrl))
}

// SetWizardFields merges field values into the session's form bag.
// PUT /api/wizards/:id/fields
func (a *API) SetWizardFields(c *gin.Context) {
	id := c.Param("id")
	ctrl, flow, err := a.Sessions.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	var values wizard.Form
	if !BindJSONOrError(c, &values) {
		return
	}
	ctrl.SetAll(values)
	c.JSON(http.StatusOK, snapshot(id, flow, ctrl))
}

// WizardNext validates the current step and advances on success.
// POST /api/wizards/:id/next
func (a *API) WizardNext(c *gin.Context) {
	id := c.Param("id")
	ctrl, flow, err := a.Sessions.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !ctrl.Next() {
		c.JSON(http.StatusUnprocessableEntity, snapshot(id, flow, ctrl))
		return
	}
	c.JSON(http.StatusOK, snapshot(id, flow, ctrl))
}

// WizardBack retreats one step, keeping all entered data.
// POST /api/wizards/:id/back
func (a *API) WizardBack(c *gin.Context) {
	id := c.Param("id")
	ctrl, flow, err := a.Sessions.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	ctrl.Back()
	c.JSON(http.StatusOK, snapshot(id, flow, ctrl))
}

// WizardSubmit runs the flow's submit action from the final step. The
// session is discarded on success; failures leave it retryable.
// POST /api/wizards/:id/submit
func (a *API) WizardSubmit(c *gin.Context) {
	id := c.Param("id")
	ctrl, flow, err := a.Sessions.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	result, err := ctrl.Submit(c.Request.Context())
	switch {
	case err == nil:
		a.Sessions.Delete(id)
		state := snapshot(id, flow, ctrl)
		state.Result = result
		c.JSON(http.StatusOK, state)
	case errors.Is(err, wizard.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"message": "submission already in progress"})
	case errors.Is(err, wizard.ErrAlreadyDone):
		a.Sessions.Delete(id)
		state := snapshot(id, flow, ctrl)
		state.Result = result
		c.JSON(http.StatusOK, state)
	case errors.Is(err, wizard.ErrNotOnFinalStep):
		RespondError(c, http.StatusBadRequest, "submit is only valid on the final step", nil)
	default:
		var vf wizard.ValidationFailed
		if errors.As(err, &vf) {
			state := snapshot(id, flow, ctrl)
			state.Errors = vf.Fields
			c.JSON(http.StatusUnprocessableEntity, state)
			return
		}
		RespondDomainError(c, err)
	}
}
