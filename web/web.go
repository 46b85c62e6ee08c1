// Package web provides the HTTP server for the userhub service: routing,
// templates and lifecycle management.
package web

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/userhub-dev/userhub/config"
	"github.com/userhub-dev/userhub/logger"
	"github.com/userhub-dev/userhub/token"
	"github.com/userhub-dev/userhub/util/common"
	"github.com/userhub-dev/userhub/web/controller"
	"github.com/userhub-dev/userhub/web/service"
)

//go:embed html/*
var htmlFS embed.FS

// Server wires the services, controllers and HTTP listener together. Each
// server owns its user store, so tests can run independent instances.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	userService  *service.UserService
	authService  *service.AuthService
	tokenService *token.Service

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server instance with a fresh user store and a
// token service keyed by the configured secret.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	users := service.NewUserService()
	tokens := token.NewService([]byte(config.GetSecret()))
	return &Server{
		userService:  users,
		tokenService: tokens,
		authService:  service.NewAuthService(users, tokens),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// getHtmlTemplate parses the embedded HTML templates.
func (s *Server) getHtmlTemplate() (*template.Template, error) {
	return template.ParseFS(htmlFS, "html/*.html")
}

// initRouter initializes Gin, registers middleware, templates and
// controllers and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	tpl, err := s.getHtmlTemplate()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tpl)

	g := engine.Group("/")
	controller.NewIndexController(g, s.userService)
	controller.NewAuthController(g, s.authService)
	controller.NewUserController(g, s.userService, s.tokenService)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	})

	return engine, nil
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	logger.Info("web server running HTTP on", listener.Addr())

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	return nil
}

// Stop shuts down the web server and closes its listener.
func (s *Server) Stop() error {
	s.cancel()
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
