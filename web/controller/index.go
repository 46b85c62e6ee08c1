package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/userhub-dev/userhub/config"
	"github.com/userhub-dev/userhub/web/service"
)

// IndexController serves the HTML listing of registered users at the root.
type IndexController struct {
	svc *service.UserService
}

func NewIndexController(g *gin.RouterGroup, svc *service.UserService) *IndexController {
	a := &IndexController{svc: svc}
	g.GET("/", a.index)
	return a
}

func (a *IndexController) index(c *gin.Context) {
	c.HTML(http.StatusOK, "users.html", gin.H{
		"title":   "Users",
		"users":   a.svc.List(),
		"cur_ver": config.GetVersion(),
	})
}
