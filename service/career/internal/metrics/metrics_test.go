package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Conta le RPC per metodo e codice di uscita.
func TestUnaryServerInterceptorCounts(t *testing.T) {
	m := New()
	interceptor := m.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/career.v1.CareerService/BuyPlayer"}

	ok := func(context.Context, any) (any, error) { return "ok", nil }
	locked := func(context.Context, any) (any, error) {
		return nil, status.Error(codes.AlreadyExists, "player is locked")
	}

	for i := 0; i < 2; i++ {
		if _, err := interceptor(context.Background(), nil, info, ok); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := interceptor(context.Background(), nil, info, locked); status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected handler error to pass through, got %v", err)
	}

	if got := testutil.ToFloat64(m.requests.WithLabelValues("BuyPlayer", "OK")); got != 2 {
		t.Fatalf("expected 2 OK calls, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("BuyPlayer", "AlreadyExists")); got != 1 {
		t.Fatalf("expected 1 AlreadyExists call, got %v", got)
	}
	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Fatalf("expected no in-flight calls, got %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	interceptor := m.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/career.v1.CareerService/GetCareer"}
	_, _ = interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) { return nil, nil })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `career_grpc_requests_total{code="OK",method="GetCareer"} 1`) {
		t.Fatalf("metric not exposed:\n%s", rec.Body.String())
	}
}
