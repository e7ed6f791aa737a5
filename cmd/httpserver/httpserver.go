// Package httpserver manages server creation and api routing.
package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-fin/fin-api/internal/accountdelivery"
	"github.com/go-fin/fin-api/internal/accountrepo"
	"github.com/go-fin/fin-api/internal/accountservice"
	"github.com/go-fin/fin-api/internal/middleware"
	"github.com/go-fin/fin-api/internal/statementdelivery"
	"github.com/go-fin/fin-api/internal/statementservice"
	"github.com/go-fin/fin-api/pkg/configpkg"
)

// Server holds the ledger store, handlers router and configuration.
type Server struct {
	Store  *accountrepo.RepoMem
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(store *accountrepo.RepoMem, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountService := accountservice.New(store)
	statementService := statementservice.New(store)

	accountHandler := accountdelivery.NewHandler(accountService)
	statementHandler := statementdelivery.NewHandler(statementService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/account", accountHandler.Create)

	// Every route below requires the taxId identity header.
	identityRoutes := engine.Group("/").Use(middleware.Identity(accountService))

	identityRoutes.GET("/statement", statementHandler.Statement)
	identityRoutes.GET("/statement/date", statementHandler.StatementByDate)
	identityRoutes.POST("/deposit", statementHandler.Deposit)
	identityRoutes.POST("/withdraw", statementHandler.Withdraw)
	identityRoutes.GET("/balance", statementHandler.Balance)

	identityRoutes.GET("/account", accountHandler.Get)
	identityRoutes.PATCH("/account", accountHandler.Update)
	identityRoutes.DELETE("/account", accountHandler.Delete)

	server := &Server{
		Store:  store,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
