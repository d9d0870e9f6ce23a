// Package visitor gives each browser an anonymous, stable visitor ID.
//
// There are no accounts and no login. The ID only exists so per-browser
// state on the server (request sequencing, rate limits) has a key that
// survives across requests. It is stored in a signed gorilla/sessions
// cookie.
package visitor

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	DefaultSessionName = "aidhub-visitor"

	visitorIDKey = "visitor_id"

	// one year; the ID carries nothing sensitive
	maxAge = 365 * 24 * 60 * 60
)

type ctxKey string

const visitorKey ctxKey = "visitorID"

// Manager issues and reads visitor IDs.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager. An empty sessionKey generates a random key,
// which is fine for development but resets every visitor on restart.
//
// In production (secure=true) cookies are Secure; SameSite is Lax in both
// modes since the cookie is only read by this site.
func NewManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	key := []byte(sessionKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, fmt.Errorf("generate session key: random source unavailable")
		}
		logger.Warn("session_key not set; generated an ephemeral key")
	} else if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(key)))
	}
	if name == "" {
		name = DefaultSessionName
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("visitor session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain),
		zap.String("name", name))

	return &Manager{store: store, name: name, log: logger}, nil
}

// Load injects the visitor ID into the request context, issuing a new one
// (and setting the cookie) on first contact. A cookie that fails signature
// verification is replaced rather than rejected.
func (m *Manager) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Get(r, m.name)
		if err != nil {
			m.log.Debug("visitor cookie rejected; issuing new one", zap.Error(err))
		}

		id, _ := sess.Values[visitorIDKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[visitorIDKey] = id
			if err := sess.Save(r, w); err != nil {
				m.log.Warn("visitor cookie save failed", zap.Error(err))
			}
		}

		next.ServeHTTP(w, withID(r, id))
	})
}

// ID returns the visitor ID placed in the context by Load.
func ID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(visitorKey).(string)
	return id, ok && id != ""
}

// WithTestID attaches a visitor ID to r without a cookie. For tests.
func WithTestID(r *http.Request, id string) *http.Request {
	return withID(r, id)
}

func withID(r *http.Request, id string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), visitorKey, id))
}
