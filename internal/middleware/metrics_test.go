package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_LabelsByRouteAndRole(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Metrics)
	router.Route("/metrics-test", func(r chi.Router) {
		r.Use(Identify)
		r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	testCases := []struct {
		name       string
		userID     string
		role       string
		wantStatus string
		wantRole   string
	}{
		{name: "customer without role header", userID: "7", wantStatus: "200", wantRole: "CUSTOMER"},
		{name: "warehouse handler", userID: "30", role: "WAREHOUSE_HANDLER", wantStatus: "200", wantRole: "WAREHOUSE_HANDLER"},
		{name: "admin", userID: "1", role: "ADMIN", wantStatus: "200", wantRole: "ADMIN"},
		{name: "no user", wantStatus: "401", wantRole: "anonymous"},
		{name: "unknown role", userID: "1", role: "ROOT", wantStatus: "401", wantRole: "anonymous"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test/orders/{id}", tc.wantStatus, tc.wantRole)
			before := testutil.ToFloat64(counter)

			req := httptest.NewRequest(http.MethodGet, "/metrics-test/orders/5", nil)
			if tc.userID != "" {
				req.Header.Set(UserIDHeader, tc.userID)
			}
			if tc.role != "" {
				req.Header.Set(RoleHeader, tc.role)
			}
			router.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestMetrics_UnknownRoute(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Metrics)
	router.Get("/known", func(w http.ResponseWriter, r *http.Request) {})

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "unknown", "404", "anonymous")
	before := testutil.ToFloat64(counter)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
