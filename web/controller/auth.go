// Package controller provides the HTTP request handlers for the userhub
// service: registration, login, the protected user CRUD API and the HTML
// user listing.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/userhub-dev/userhub/logger"
	"github.com/userhub-dev/userhub/web/service"
)

// credentialsForm is the request body for register and login.
type credentialsForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthController handles the unauthenticated routes: you need no token to
// obtain one.
type AuthController struct {
	svc *service.AuthService
}

func NewAuthController(g *gin.RouterGroup, svc *service.AuthService) *AuthController {
	a := &AuthController{svc: svc}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
}

func (a *AuthController) register(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Username == "" || form.Password == "" {
		jsonError(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user, err := a.svc.Register(form.Username, form.Password)
	if err != nil {
		jsonError(c, http.StatusConflict, "Username already exists.")
		return
	}

	logger.Infof("user %q registered", user.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully.", "user": user})
}

func (a *AuthController) login(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Username == "" || form.Password == "" {
		jsonError(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	tok, err := a.svc.Login(form.Username, form.Password)
	if err != nil {
		logger.Warningf("failed login for %q from %s", form.Username, c.ClientIP())
		jsonError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	logger.Infof("%s logged in successfully", form.Username)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful.", "token": tok})
}
