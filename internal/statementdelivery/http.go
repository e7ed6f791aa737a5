// Package statementdelivery manages delivery layer of statements.
package statementdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-fin/fin-api/internal/domain"
	"github.com/go-fin/fin-api/internal/middleware"
	"github.com/go-fin/fin-api/pkg/errorspkg"
	"github.com/go-fin/fin-api/pkg/web"
)

const dateLayout = "2006-01-02"

// Service provides service layer interface needed by statement delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package statementdelivery
type Service interface {
	Deposit(ctx context.Context, taxID string, amount decimal.Decimal, description string) (domain.Transaction, error)
	Withdraw(ctx context.Context, taxID string, amount decimal.Decimal) (domain.Transaction, error)
	Statement(ctx context.Context, taxID string) ([]domain.Transaction, error)
	StatementByDate(ctx context.Context, taxID string, date time.Time) ([]domain.Transaction, error)
	Balance(ctx context.Context, taxID string) (decimal.Decimal, error)
}

// Handler facilitates statement delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns statement handler.
func NewHandler(ss Service) Handler {
	return Handler{service: ss}
}

func bindErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return ""
}

type depositRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// Deposit handles http request to credit the resolved account.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	customer := gctx.MustGet(middleware.CustomerKey).(domain.Account)

	var req depositRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.JSONError{Error: bindErrorMsg(err)})

		return
	}

	_, err := h.service.Deposit(ctx, customer.TaxID, req.Amount, req.Description)
	if err != nil {
		switch err {
		case domain.ErrNegativeAmount, domain.ErrInvalidAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrCustomerNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Message: "Deposit successful"})
}

type withdrawRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// Withdraw handles http request to debit the resolved account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	customer := gctx.MustGet(middleware.CustomerKey).(domain.Account)

	var req withdrawRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.JSONError{Error: bindErrorMsg(err)})

		return
	}

	_, err := h.service.Withdraw(ctx, customer.TaxID, req.Amount)
	if err != nil {
		switch err {
		case domain.ErrInsufficientFunds, domain.ErrNegativeAmount, domain.ErrInvalidAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrCustomerNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Message: "Withdraw successful"})
}

// Statement handles http request to list the resolved account's transactions.
func (h *Handler) Statement(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	customer := gctx.MustGet(middleware.CustomerKey).(domain.Account)

	statement, err := h.service.Statement(ctx, customer.TaxID)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, statement)
}

type byDateRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// StatementByDate handles http request to list the transactions created on
// the given calendar day.
func (h *Handler) StatementByDate(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	customer := gctx.MustGet(middleware.CustomerKey).(domain.Account)

	var req byDateRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.JSONError{Error: bindErrorMsg(err)})

		return
	}

	// The layout carries no time-of-day, so the parse is anchored at
	// midnight and cannot shift across a day boundary.
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	statement, err := h.service.StatementByDate(ctx, customer.TaxID, date)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, statement)
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// Balance handles http request to report the resolved account's balance.
func (h *Handler) Balance(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	customer := gctx.MustGet(middleware.CustomerKey).(domain.Account)

	balance, err := h.service.Balance(ctx, customer.TaxID)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, balanceResponse{Balance: balance})
}
