package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/service"
	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// executeAccessToken runs the middleware and reports the claims the next
// handler saw.
func executeAccessToken(t *testing.T, h *Handler, authHeader string) (*httptest.ResponseRecorder, *models.AccessClaims) {
	t.Helper()

	var seen *models.AccessClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetAccessFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.withAccessToken(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestWithAccessToken_NoHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	rec, claims := executeAccessToken(t, h, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, claims)
}

func TestWithAccessToken_ValidToken(t *testing.T) {
	h, m := newTestHandler(t)

	want := &models.AccessClaims{Action: models.AccessEdit}
	want.Subject = "l1"
	m.lists.EXPECT().ParseToken(gomock.Any(), "good-token").Return(want, nil)

	rec, claims := executeAccessToken(t, h, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "l1", claims.ListID())
	assert.Equal(t, models.AccessEdit, claims.Action)
}

func TestWithAccessToken_IgnoresBadCredentials(t *testing.T) {
	tests := []struct {
		name   string
		header string
		parse  bool
	}{
		{name: "no scheme", header: "good-token"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer "},
		{name: "invalid token", header: "Bearer expired", parse: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.parse {
				m.lists.EXPECT().ParseToken(gomock.Any(), "expired").Return(nil, service.ErrTokenIsExpiredOrInvalid)
			}

			rec, claims := executeAccessToken(t, h, tt.header)

			// запрос продолжается анонимно
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Nil(t, claims)
		})
	}
}

func TestWithAccessToken_ThroughRouter(t *testing.T) {
	h, m := newTestHandler(t)

	claims := &models.AccessClaims{Action: models.AccessView}
	claims.Subject = "l1"
	m.lists.EXPECT().ParseToken(gomock.Any(), "t").Return(claims, nil)
	m.items.EXPECT().GetItems(gomock.Any(), "l1").Return(nil, errors.New("boom"))

	rec := serve(t, h, http.MethodGet, "/api/lists/l1/items", nil, "Authorization", "Bearer t")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
