// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-fin/fin-api/internal/domain"
	"github.com/go-fin/fin-api/internal/middleware"
	"github.com/go-fin/fin-api/pkg/errorspkg"
	"github.com/go-fin/fin-api/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, taxID, name string) (domain.Account, error)
	Get(ctx context.Context, taxID string) (domain.Account, error)
	Update(ctx context.Context, taxID, name string) (domain.Account, error)
	Delete(ctx context.Context, taxID string) ([]domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type createRequest struct {
	TaxID string `json:"taxId" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// Create handles http request to create account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.JSONError{Error: errMsg})

		return
	}

	_, err := h.service.Create(ctx, req.TaxID, req.Name)
	if err != nil {
		if err == domain.ErrCustomerAlreadyExists {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Message: "Account successfully created"})
}

// Get handles http request to get the resolved account with its statement.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	customer := gctx.MustGet(middleware.CustomerKey).(domain.Account)

	account, err := h.service.Get(ctx, customer.TaxID)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, account)
}

type updateRequest struct {
	Name string `json:"name" binding:"required"`
}

// Update handles http request to rename the resolved account.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	customer := gctx.MustGet(middleware.CustomerKey).(domain.Account)

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.JSONError{Error: errMsg})

		return
	}

	_, err := h.service.Update(ctx, customer.TaxID, req.Name)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Message: "Account updated successfully"})
}

// Delete handles http request to delete the resolved account. The response
// body lists the remaining accounts.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	customer := gctx.MustGet(middleware.CustomerKey).(domain.Account)

	accounts, err := h.service.Delete(ctx, customer.TaxID)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, accounts)
}
