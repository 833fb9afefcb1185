package storefront

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// statusUpdate is the message pushed on /ws/cart-status.
type statusUpdate struct {
	Text string `json:"text"`
}

func (s *Storefront) upgrader() *websocket.Upgrader {
	u := &websocket.Upgrader{}
	if s.cfg.AllowAllOrigins {
		u.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return u
}

// handleCartStatus streams the profile's cart status line: the current text
// first, then every change until the client goes away.
func (s *Storefront) handleCartStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("cart status: websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	display, release := s.displays.Acquire(ProfileID(r.Context()))
	defer release()

	// Only the latest text matters; a slow reader skips stale ones.
	updates := make(chan string, 1)
	unsubscribe := display.Subscribe(func(text string) {
		for {
			select {
			case updates <- text:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.log.Debug("cart status: websocket read", zap.Error(err))
				}
				return
			}
		}
	}()

	if err := conn.WriteJSON(statusUpdate{Text: display.Text()}); err != nil {
		return
	}
	for {
		select {
		case <-done:
			return
		case text := <-updates:
			if err := conn.WriteJSON(statusUpdate{Text: text}); err != nil {
				s.log.Debug("cart status: websocket write", zap.Error(err))
				return
			}
		}
	}
}
