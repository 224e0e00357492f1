package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"stealthcompany.com/medrec-client/internal/backend"
	"stealthcompany.com/medrec-client/internal/devserver"
	"stealthcompany.com/medrec-client/internal/session"
)

// testEnv wires the page controllers to an in-process mock backend and
// counts every request that reaches it, so tests can assert that validation
// failures dispatch nothing.
type testEnv struct {
	server   *httptest.Server
	mock     *devserver.Server
	api      *backend.Client
	store    *session.Store
	requests atomic.Int64
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		mock: devserver.New([]byte("test-key")),
	}

	routes := env.mock.Routes()
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.requests.Add(1)
		routes.ServeHTTP(w, r)
	}))
	t.Cleanup(env.server.Close)

	env.store = session.NewStore(t.TempDir(), env.server.URL)
	env.api = backend.NewClient(env.server.URL, 5*time.Second, env.store)
	return env
}

// login authenticates through the login page and fails the test on anything
// but a dashboard redirect.
func (env *testEnv) login(t *testing.T, username, password string) {
	t.Helper()

	page := NewLoginPage(env.api, env.store)
	if route := page.Submit(context.Background(), username, password); route != RouteDashboard {
		t.Fatalf("Expected login to reach the dashboard, got route %q (message %q)",
			route, page.Doc().Get("message"))
	}
}

func (env *testEnv) requestCount() int64 {
	return env.requests.Load()
}
