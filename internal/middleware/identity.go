package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-fin/fin-api/internal/domain"
	"github.com/go-fin/fin-api/pkg/web"
)

const (
	// IdentityHeaderKey is the header carrying the caller's taxpayer id.
	IdentityHeaderKey = "taxId"
	// CustomerKey is the context key the resolved account is stored under.
	CustomerKey = "customer"
)

// AccountGetter resolves a taxpayer id to its account.
type AccountGetter interface {
	Get(ctx context.Context, taxID string) (domain.Account, error)
}

// Identity resolves the taxId header to an account and attaches it to the
// request context. The header is trusted as-is; a missing or unknown id
// aborts the request with 404 before any handler runs.
func Identity(accounts AccountGetter) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		ctx := gctx.Request.Context()
		l := zerolog.Ctx(ctx)

		taxID := gctx.GetHeader(IdentityHeaderKey)
		if taxID == "" {
			gctx.AbortWithStatusJSON(http.StatusNotFound, web.Error(domain.ErrCustomerNotFound))
			return
		}

		account, err := accounts.Get(ctx, taxID)
		if err != nil {
			l.Info().Err(err).Str("tax_id", taxID).Send()
			gctx.AbortWithStatusJSON(http.StatusNotFound, web.Error(domain.ErrCustomerNotFound))

			return
		}

		gctx.Set(CustomerKey, account)
		gctx.Next()
	}
}
