package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"gitea.com/go-chi/session"
	"github.com/rs/zerolog/log"

	"github.com/footyhub/footyhub/authenticator"
	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/services"
	"github.com/footyhub/footyhub/userctx"
)

const stateKey = "oidc_state"

// AuthController handles signup, login and logout
type AuthController struct {
	services *services.Services
	provider authenticator.Provider
}

// NewAuthController creates a new auth controller. provider may be nil.
func NewAuthController(services *services.Services, provider authenticator.Provider) *AuthController {
	return &AuthController{
		services: services,
		provider: provider,
	}
}

type loginData struct {
	Page
	Username   string
	Next       string
	SSOEnabled bool
}

// LoginPage handles GET /login
func (c *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	if userctx.GetUser(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	renderTemplate(w, "login.html", loginData{
		Page:       newPage(r, "Log in", "login"),
		Next:       r.URL.Query().Get("next"),
		SSOEnabled: c.provider != nil,
	})
}

// Login handles POST /login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	form := &models.LoginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
	next := r.FormValue("next")

	_, err := c.services.Auth.Login(r.Context(), userctx.GetAddress(r.Context()), form)
	if err != nil {
		status := statusFor(err)
		if errors.Is(err, services.ErrUserNotFound) {
			status = http.StatusUnauthorized
		}
		if status == http.StatusInternalServerError {
			serverError(w, r, err, "login failed")
			return
		}

		data := loginData{
			Page:       newPage(r, "Log in", "login"),
			Username:   form.Username,
			Next:       next,
			SSOEnabled: c.provider != nil,
		}
		data.Error = loginMessage(err)
		renderTemplateWithStatus(w, status, "login.html", data)
		return
	}

	http.Redirect(w, r, safeRedirect(next), http.StatusSeeOther)
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return "User does not exist"
	case errors.Is(err, services.ErrInvalidCredential):
		return "Password is incorrect"
	default:
		return err.Error()
	}
}

type signupData struct {
	Page
	Form *models.SignupForm
}

// SignupPage handles GET /signup
func (c *AuthController) SignupPage(w http.ResponseWriter, r *http.Request) {
	if userctx.GetUser(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	renderTemplate(w, "signup.html", signupData{
		Page: newPage(r, "Sign up", "signup"),
		Form: &models.SignupForm{},
	})
}

// Signup handles POST /signup
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	form := &models.SignupForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}

	_, err := c.services.Auth.Signup(r.Context(), userctx.GetAddress(r.Context()), form)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			serverError(w, r, err, "signup failed")
			return
		}

		data := signupData{
			Page: newPage(r, "Sign up", "signup"),
			Form: form,
		}
		data.Error = signupMessage(err)
		renderTemplateWithStatus(w, status, "signup.html", data)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func signupMessage(err error) string {
	if errors.Is(err, services.ErrUserAlreadyExists) {
		return "User already exists"
	}
	return err.Error()
}

// Logout handles GET /logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.services.Auth.Logout(r.Context(), userctx.GetAddress(r.Context())); err != nil {
		serverError(w, r, err, "logout failed")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SSOLogin handles GET /login/sso and initiates the authentication process
func (c *AuthController) SSOLogin(w http.ResponseWriter, r *http.Request) {
	state, err := generateRandomState()
	if err != nil {
		serverError(w, r, err, "failed to generate state")
		return
	}

	// Save the state in the session to validate in callback
	sess := session.GetSession(r)
	if err := sess.Set(stateKey, state); err != nil {
		serverError(w, r, err, "failed to store state")
		return
	}

	http.Redirect(w, r, c.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles GET /callback from the identity provider
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	storedState, _ := sess.Get(stateKey).(string)
	if storedState == "" {
		renderError(w, r, http.StatusBadRequest, "Login session expired. Please try again.")
		return
	}
	sess.Delete(stateKey)

	if r.URL.Query().Get("state") != storedState {
		renderError(w, r, http.StatusBadRequest, "Invalid state parameter.")
		return
	}

	token, err := c.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		log.Warn().Err(err).Msg("failed to exchange authorization code")
		renderError(w, r, http.StatusUnauthorized, "Single sign-on failed.")
		return
	}

	claims, err := c.provider.GetClaims(r.Context(), token)
	if err != nil {
		log.Warn().Err(err).Msg("failed to verify ID token")
		renderError(w, r, http.StatusUnauthorized, "Single sign-on failed.")
		return
	}

	_, err = c.services.Auth.LoginExternal(r.Context(), userctx.GetAddress(r.Context()), claims.Username(), claims.Email())
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			serverError(w, r, err, "single sign-on login failed")
			return
		}
		renderError(w, r, status, err.Error())
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// safeRedirect only lets local paths through. Browsers strip tabs and
// newlines from a Location, so any control character is refused.
func safeRedirect(next string) string {
	if strings.ContainsFunc(next, isControl) {
		return "/"
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		return "/"
	}
	return next
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
