package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/userhub-dev/userhub/token"
	"github.com/userhub-dev/userhub/web/middleware"
	"github.com/userhub-dev/userhub/web/service"
)

// UserController exposes the protected CRUD API over the user store. Every
// route sits behind the bearer-token middleware; handlers themselves perform
// no further auth checks.
type UserController struct {
	svc *service.UserService
}

func NewUserController(g *gin.RouterGroup, svc *service.UserService, tokens *token.Service) *UserController {
	a := &UserController{svc: svc}
	a.initRouter(g, tokens)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup, tokens *token.Service) {
	users := g.Group("/users")
	users.Use(middleware.TokenAuth(tokens))
	{
		users.GET("", a.list)
		users.POST("", a.create)
		users.PUT("/:id", a.update)
		users.DELETE("/:id", a.delete)
	}
}

func (a *UserController) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": a.svc.List()})
}

func (a *UserController) create(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Username == "" || form.Password == "" {
		jsonError(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user, err := a.svc.Create(form.Username, form.Password)
	if err != nil {
		jsonError(c, http.StatusConflict, "Username already exists.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created.", "user": user})
}

func (a *UserController) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid user ID.")
		return
	}

	var patch service.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		jsonError(c, http.StatusBadRequest, "Request body is required.")
		return
	}

	user, err := a.svc.Update(id, patch)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			jsonError(c, http.StatusConflict, "Username already in use.")
		} else {
			jsonError(c, http.StatusNotFound, "User not found.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated.", "user": user})
}

func (a *UserController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid user ID.")
		return
	}

	if !a.svc.Delete(id) {
		jsonError(c, http.StatusNotFound, "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted."})
}
