package storefront

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ProfileCookie names the cookie that identifies a browser profile.
const ProfileCookie = "bh_profile"

const profileMaxAge = 365 * 24 * 60 * 60

type profileKey struct{}

// profile reads the profile cookie, issuing a new id when it is missing or
// not a uuid, and stores the id in the request context.
func (s *Storefront) profile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(ProfileCookie); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     ProfileCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   profileMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			s.log.Debug("issued profile")
		}
		next.ServeHTTP(w, r.WithContext(WithProfileID(r.Context(), id)))
	})
}

// WithProfileID returns a copy of ctx carrying the profile id.
func WithProfileID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, profileKey{}, id)
}

// ProfileID returns the profile id stored in ctx, or "".
func ProfileID(ctx context.Context) string {
	id, _ := ctx.Value(profileKey{}).(string)
	return id
}
