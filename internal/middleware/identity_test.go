package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/go-fin/fin-api/internal/accountrepo"
	"github.com/go-fin/fin-api/internal/domain"
	"github.com/go-fin/fin-api/pkg/randompkg"
	"github.com/go-fin/fin-api/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestIdentity(t *testing.T) {
	store := accountrepo.NewRepoMem()

	account, err := store.Create(context.Background(), randompkg.TaxID(), randompkg.Name())
	require.NoError(t, err)

	testCases := []struct {
		name           string
		taxID          string
		wantStatusCode int
	}{
		{
			name:           "ResolvesKnownCustomer",
			taxID:          account.TaxID,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "MissingHeader",
			taxID:          "",
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "UnknownCustomer",
			taxID:          randompkg.TaxID(),
			wantStatusCode: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			server.Use(Identity(store))
			server.GET("/account", func(gctx *gin.Context) {
				customer := gctx.MustGet(CustomerKey).(domain.Account)
				gctx.JSON(http.StatusOK, customer)
			})

			req, err := http.NewRequest(http.MethodGet, "/account", nil)
			require.NoError(t, err)

			if tc.taxID != "" {
				req.Header.Set(IdentityHeaderKey, tc.taxID)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantStatusCode == http.StatusOK {
				var got domain.Account
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
				require.Equal(t, account.TaxID, got.TaxID)

				return
			}

			var got web.JSONError
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
			require.Equal(t, domain.ErrCustomerNotFound.Error(), got.Error)
		})
	}
}
