// Package workspace owns the per-browser wiring of session, cart and backend client.
package workspace

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/dtroode/medsetu-storefront/internal/backend"
	"github.com/dtroode/medsetu-storefront/internal/cart"
	"github.com/dtroode/medsetu-storefront/internal/cartsync"
	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/service"
	"github.com/dtroode/medsetu-storefront/internal/session"
	"github.com/dtroode/medsetu-storefront/internal/storage/keyspace"
)

// Deps are the process-wide adapters every workspace is built over.
type Deps struct {
	Durable   model.KV
	Scoped    model.KV
	Objects   model.ObjectStorage
	Transport *resty.Client
	Logger    *logger.Logger
}

// Identity names the storage a workspace is built over. BrowserID comes from the
// persistent browser cookie and namespaces the durable port. SessionID comes from
// a cookie without expiry and namespaces the session-scoped port, so the cart is
// gone once the browser session ends.
type Identity struct {
	BrowserID string
	SessionID string
}

func (i Identity) key() string {
	return i.BrowserID + "/" + i.SessionID
}

// Workspace is the client state of one browser session.
type Workspace struct {
	ID        string
	SessionID string
	Session   *session.Store
	Cart      *cart.Store
	Backend   *backend.Client

	Auth          *service.Auth
	Checkout      *service.Checkout
	Prescriptions *service.Prescriptions

	sync *cartsync.Sync
}

// Open builds and starts the workspace of id: both stores rehydrate,
// the sync glue registers, then startup validation runs.
func Open(ctx context.Context, id Identity, deps Deps) (*Workspace, error) {
	log := deps.Logger.With("browser_id", id.BrowserID)

	durable := keyspace.New(deps.Durable, id.BrowserID)
	scoped := keyspace.New(deps.Scoped, id.SessionID)

	sess := session.New(durable, log, session.WithLogoutPurge(scoped, cart.StorageKey))
	crt := cart.New(scoped, log)

	if err := sess.Rehydrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to rehydrate session: %w", err)
	}
	if err := crt.Rehydrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to rehydrate cart: %w", err)
	}

	client := backend.New(deps.Transport, backend.NewKVCredentials(durable), log)

	w := &Workspace{
		ID:            id.BrowserID,
		SessionID:     id.SessionID,
		Session:       sess,
		Cart:          crt,
		Backend:       client,
		Auth:          service.NewAuth(client, sess, log),
		Checkout:      service.NewCheckout(sess, crt, client, log),
		Prescriptions: service.NewPrescriptions(sess, deps.Objects, client, log),
		sync:          cartsync.Register(sess, crt, log),
	}

	if err := sess.Initialize(ctx); err != nil {
		w.Dispose()
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}

	return w, nil
}

// Dispose detaches the sync glue and drops all session listeners.
func (w *Workspace) Dispose() {
	w.sync.Close()
	w.Session.Dispose()
}
