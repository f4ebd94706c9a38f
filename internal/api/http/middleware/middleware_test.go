package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/medsetu-storefront/internal/api/http/context"
	"github.com/dtroode/medsetu-storefront/internal/backend"
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/storage/memory"
	"github.com/dtroode/medsetu-storefront/internal/testutil"
	"github.com/dtroode/medsetu-storefront/internal/workspace"
)

const cookieName = "__Host-storefront"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRegistry(t *testing.T) *workspace.Registry {
	t.Helper()

	r := workspace.NewRegistry(workspace.Deps{
		Durable:   memory.New(),
		Scoped:    memory.New(),
		Transport: backend.NewTransport("http://127.0.0.1:1", time.Second),
		Logger:    testutil.MakeNoopLogger(),
	}, 16, time.Hour)
	t.Cleanup(r.Close)
	return r
}

type failingResolver struct{}

func (failingResolver) Get(context.Context, workspace.Identity) (*workspace.Workspace, error) {
	return nil, errors.New("redis down")
}

func newEngine(resolver WorkspaceResolver, handlers ...gin.HandlerFunc) (*gin.Engine, *httpctx.Manager) {
	mgr := httpctx.NewManager()
	log := testutil.MakeNoopLogger()

	e := gin.New()
	e.Use(NewLogging(mgr, log).Handle)
	e.Use(NewBrowser(resolver, mgr, CookieOptions{Name: cookieName, Secure: true, MaxAge: 24 * time.Hour}, log).Handle)
	e.GET("/", append(handlers, func(c *gin.Context) {
		ws, ok := mgr.GetWorkspaceFromContext(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, ws.ID)
	})...)
	return e, mgr
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	require.FailNow(t, "cookie not set", name)
	return nil
}

func browserCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	return responseCookie(t, rec, cookieName)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	return responseCookie(t, rec, cookieName+"-session")
}

func TestBrowser_IssuesCookie(t *testing.T) {
	e, _ := newEngine(newRegistry(t))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := browserCookie(t, rec)
	_, err := uuid.Parse(cookie.Value)
	assert.NoError(t, err)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.Equal(t, cookie.Value, rec.Body.String())
}

func TestBrowser_IssuesSessionCookieWithoutExpiry(t *testing.T) {
	e, _ := newEngine(newRegistry(t))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	_, err := uuid.Parse(cookie.Value)
	assert.NoError(t, err)
	assert.NotEqual(t, browserCookie(t, rec).Value, cookie.Value)
	assert.Zero(t, cookie.MaxAge)
	assert.True(t, cookie.Expires.IsZero())
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)

	for _, header := range rec.Result().Header.Values("Set-Cookie") {
		if strings.HasPrefix(header, cookieName+"-session=") {
			assert.NotContains(t, header, "Max-Age")
			assert.NotContains(t, header, "Expires")
		}
	}
}

func TestBrowser_RestartedBrowserGetsEmptyCart(t *testing.T) {
	ctx := context.Background()
	registry := newRegistry(t)
	mgr := httpctx.NewManager()
	log := testutil.MakeNoopLogger()

	e := gin.New()
	e.Use(NewBrowser(registry, mgr, CookieOptions{Name: cookieName, MaxAge: 24 * time.Hour}, log).Handle)
	e.GET("/", func(c *gin.Context) {
		ws, _ := mgr.GetWorkspaceFromContext(c.Request.Context())
		c.String(http.StatusOK, strconv.Itoa(ws.Cart.ItemCount()))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	persistent, scoped := browserCookie(t, rec), sessionCookie(t, rec)

	ws, err := registry.Get(ctx, workspace.Identity{BrowserID: persistent.Value, SessionID: scoped.Value})
	require.NoError(t, err)
	require.NoError(t, ws.Cart.AddItem(ctx, model.Medicine{ID: "m1", Name: "Paracetamol", Price: 25}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: persistent.Value})
	req.AddCookie(&http.Cookie{Name: cookieName + "-session", Value: scoped.Value})
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "1", rec.Body.String())

	// Only the persistent cookie survives a browser restart.
	registry.Close()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: persistent.Value})
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "0", rec.Body.String())
	assert.Equal(t, persistent.Value, browserCookie(t, rec).Value)
	assert.NotEqual(t, scoped.Value, sessionCookie(t, rec).Value)
}

func TestBrowser_ReusesCookie(t *testing.T) {
	e, _ := newEngine(newRegistry(t))
	id, sid := uuid.NewString(), uuid.NewString()

	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: id})
		req.AddCookie(&http.Cookie{Name: cookieName + "-session", Value: sid})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, id, rec.Body.String())
		assert.Equal(t, id, browserCookie(t, rec).Value)
		assert.Equal(t, sid, sessionCookie(t, rec).Value)
	}
}

func TestBrowser_ReplacesForgedCookie(t *testing.T) {
	e, _ := newEngine(newRegistry(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "../../admin"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	got := browserCookie(t, rec).Value
	assert.NotEqual(t, "../../admin", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestBrowser_ResolverFailure(t *testing.T) {
	e, _ := newEngine(failingResolver{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"session storage unavailable"}`, rec.Body.String())
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		user       *model.User
		roles      []model.Role
		wantStatus int
		wantBody   string
	}{
		{
			name:       "anonymous",
			roles:      []model.Role{model.RoleStoreOperator},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"authentication required","redirect":"/login"}`,
		},
		{
			name:       "wrong role",
			user:       &model.User{ID: "u1", Role: model.RoleCustomer},
			roles:      []model.Role{model.RoleStoreOperator},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"access denied","redirect":"/"}`,
		},
		{
			name:       "allowed role",
			user:       &model.User{ID: "s1", Role: model.RoleStoreOperator},
			roles:      []model.Role{model.RoleStoreOperator},
			wantStatus: http.StatusOK,
		},
		{
			name:       "any signed in user",
			user:       &model.User{ID: "a1", Role: model.RolePlatformAdmin},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := newRegistry(t)
			id := uuid.NewString()

			if tt.user != nil {
				ws, err := registry.Get(context.Background(), workspace.Identity{BrowserID: id, SessionID: id})
				require.NoError(t, err)
				require.NoError(t, ws.Session.Login(context.Background(), *tt.user,
					testutil.MakeToken(t, string(tt.user.ID), time.Now().Add(time.Hour))))
			}

			mgr := httpctx.NewManager()
			log := testutil.MakeNoopLogger()
			e := gin.New()
			e.Use(NewBrowser(registry, mgr, CookieOptions{Name: cookieName}, log).Handle)
			e.GET("/", RequireRole(mgr, log, tt.roles...), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: cookieName, Value: id})
			req.AddCookie(&http.Cookie{Name: cookieName + "-session", Value: id})
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireRole_NoWorkspace(t *testing.T) {
	e := gin.New()
	e.GET("/", RequireRole(httpctx.NewManager(), testutil.MakeNoopLogger()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogging_PassesThrough(t *testing.T) {
	mgr := httpctx.NewManager()
	e := gin.New()
	e.Use(NewLogging(mgr, testutil.MakeNoopLogger()).Handle)
	e.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	e.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
		c.Status(http.StatusBadGateway)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
