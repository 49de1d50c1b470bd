package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/sitebooks/backend/pkg/logger"
)

const sessionName = "sitebooks_session"
const sessionActorKey = "actor"

// Identity is a chi middleware that resolves the signed-in user from the
// session cookie and injects the name into the request context. Requests
// without a session (or with an invalid cookie) pass through untouched;
// the app accepts anonymous bookkeeping entries, so this never returns 401.
//
// After this middleware, handlers call auth.ActorFromCtx(r.Context()) and
// fall back to the payload's created_by when it errors.
func Identity(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil {
				next.ServeHTTP(w, r)
				return
			}

			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			actor, ok := session.Values[sessionActorKey].(string)
			if !ok || actor == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
