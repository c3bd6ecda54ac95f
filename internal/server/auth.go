package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yashdubey2004/AI-law/internal/appctx"
	"github.com/yashdubey2004/AI-law/internal/identity"
	"github.com/yashdubey2004/AI-law/internal/routing"
	"github.com/yashdubey2004/AI-law/internal/session"
)

// AuthHandler fronts the identity gateway over HTTP. Browser form posts get
// notifications plus a redirect; JSON clients get the token in the body.
type AuthHandler struct {
	Gateway *identity.Gateway
	App     *appctx.Context
	Secret  []byte
	TTL     time.Duration
	Secure  bool
}

func (a *AuthHandler) Register(g *echo.Group) {
	g.POST("/signup", a.signup)
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)
}

func (a *AuthHandler) signup(c echo.Context) error {
	var req AuthSignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := a.Gateway.CreateAccount(c.Request().Context(), identity.AccountCreationRequest{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	}, req.ConfirmPassword)
	if err != nil {
		signupOutcomes.WithLabelValues(outcomeLabel(err)).Inc()
		return a.fail(c, routing.PathSignup, "Sign up failed", err)
	}
	signupOutcomes.WithLabelValues("success").Inc()

	// The account may still need email verification, yet the session starts
	// now and the user lands on the dashboard. This mirrors the product's
	// current flow; see the verification note in DESIGN.md.
	token, err := a.establishSession(c, id.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	a.App.Notify("Account created successfully!", "Please check your email to verify your account.", appctx.SeverityInfo)

	if wantsJSON(c) {
		return c.JSON(http.StatusCreated, AuthResponse{UserID: id.UserID, Token: token})
	}
	return c.Redirect(http.StatusSeeOther, routing.PathDashboard)
}

func (a *AuthHandler) login(c echo.Context) error {
	var req AuthLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := a.Gateway.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return a.fail(c, routing.PathLogin, "Login failed", err)
	}

	token, err := a.establishSession(c, id.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, AuthResponse{UserID: id.UserID, Token: token})
	}
	return c.Redirect(http.StatusSeeOther, routing.PathDashboard)
}

func (a *AuthHandler) logout(c echo.Context) error {
	session.ClearCookie(c)
	if wantsJSON(c) {
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, routing.PathLogin)
}

func (a *AuthHandler) establishSession(c echo.Context, userID string) (string, error) {
	token, err := session.Sign(userID, a.Secret, a.TTL)
	if err != nil {
		return "", err
	}
	session.SetCookie(c, token, a.TTL, a.Secure)
	c.Response().Header().Set("Authorization", "Bearer "+token)
	return token, nil
}

// fail converts a gateway error into the right surface: a JSON status for
// API clients, or a notification plus redirect back to the form.
func (a *AuthHandler) fail(c echo.Context, backTo, title string, err error) error {
	var ve *identity.ValidationError
	var rf *identity.RemoteFailure

	message := err.Error()
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &ve):
		title, message, status = "Error", ve.Message, http.StatusBadRequest
	case errors.As(err, &rf):
		message, status = rf.Message, http.StatusBadGateway
	}

	if wantsJSON(c) {
		return echo.NewHTTPError(status, message)
	}
	a.App.Notify(title, message, appctx.SeverityError)
	return c.Redirect(http.StatusSeeOther, backTo)
}

func outcomeLabel(err error) string {
	var ve *identity.ValidationError
	if errors.As(err, &ve) {
		return "validation_error"
	}
	return "remote_failure"
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}
