package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	httpctx "github.com/dtroode/medsetu-storefront/internal/api/http/context"
	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/workspace"
)

// WorkspaceResolver returns the workspace of a browser session, opening it if needed.
type WorkspaceResolver interface {
	Get(ctx context.Context, id workspace.Identity) (*workspace.Workspace, error)
}

// CookieOptions defines how the browser cookies are issued. Name is the
// persistent browser cookie kept for MaxAge. SessionName is the browser-session
// cookie, issued without expiry; it defaults to Name + "-session".
type CookieOptions struct {
	Name        string
	SessionName string
	Secure      bool
	MaxAge      time.Duration
}

func (o CookieOptions) sessionName() string {
	if o.SessionName != "" {
		return o.SessionName
	}
	return o.Name + "-session"
}

// Browser identifies the calling browser by cookie and attaches its workspace.
type Browser struct {
	resolver       WorkspaceResolver
	contextManager *httpctx.Manager
	cookie         CookieOptions
	logger         *logger.Logger
}

// NewBrowser creates a new Browser middleware.
func NewBrowser(resolver WorkspaceResolver, contextManager *httpctx.Manager, cookie CookieOptions, logger *logger.Logger) *Browser {
	return &Browser{
		resolver:       resolver,
		contextManager: contextManager,
		cookie:         cookie,
		logger:         logger,
	}
}

// Handle resolves the browser and session ids, refreshes both cookies and loads
// the workspace.
func (b *Browser) Handle(c *gin.Context) {
	id := workspace.Identity{
		BrowserID: cookieID(c.Request, b.cookie.Name),
		SessionID: cookieID(c.Request, b.cookie.sessionName()),
	}

	http.SetCookie(c.Writer, b.newCookie(b.cookie.Name, id.BrowserID, int(b.cookie.MaxAge.Seconds())))
	// MaxAge 0 omits Max-Age and Expires: the cookie ends with the browser session.
	http.SetCookie(c.Writer, b.newCookie(b.cookie.sessionName(), id.SessionID, 0))

	ctx := b.contextManager.SetBrowserIDToContext(c.Request.Context(), id.BrowserID)

	ws, err := b.resolver.Get(ctx, id)
	if err != nil {
		b.logger.Error("Browser middleware: failed to resolve workspace",
			"browser_id", id.BrowserID,
			"error", err.Error())
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "session storage unavailable"})
		return
	}

	c.Request = c.Request.WithContext(b.contextManager.SetWorkspaceToContext(ctx, ws))
	c.Next()
}

func (b *Browser) newCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   b.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// cookieID returns the uuid carried by cookie name, or a fresh one when the
// cookie is missing or not a uuid.
func cookieID(r *http.Request, name string) string {
	if cookie, err := r.Cookie(name); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}
