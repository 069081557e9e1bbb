package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/aristath/wealthdeck/internal/modules/interaction"
)

// FocusStream pushes focus transitions to connected dashboard views over
// websockets. Every client gets a buffered queue; a client too slow to drain
// its queue misses intermediate transitions but always gets the latest one
// the next time it catches up, which is all hover state needs.
type FocusStream struct {
	focus *interaction.Controller
	log   zerolog.Logger

	mu      sync.Mutex
	clients map[chan interaction.FocusChange]struct{}
}

// NewFocusStream creates the stream and subscribes it to the controller.
func NewFocusStream(focus *interaction.Controller, log zerolog.Logger) *FocusStream {
	fs := &FocusStream{
		focus:   focus,
		log:     log.With().Str("component", "focus_stream").Logger(),
		clients: make(map[chan interaction.FocusChange]struct{}),
	}
	focus.OnChange(fs.broadcast)
	return fs
}

func (fs *FocusStream) broadcast(change interaction.FocusChange) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for ch := range fs.clients {
		select {
		case ch <- change:
		default:
			// Queue full: drop the oldest entry and enqueue the newest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- change:
			default:
			}
		}
	}
}

// ServeHTTP upgrades the connection and streams focus changes until the
// client disconnects.
func (fs *FocusStream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Dashboard frontend may be served from a different origin in dev.
		InsecureSkipVerify: true,
	})
	if err != nil {
		fs.log.Warn().Err(err).Msg("Websocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ch := make(chan interaction.FocusChange, 8)
	fs.mu.Lock()
	fs.clients[ch] = struct{}{}
	fs.mu.Unlock()
	defer func() {
		fs.mu.Lock()
		delete(fs.clients, ch)
		fs.mu.Unlock()
	}()

	ctx := r.Context()

	// Send the current state first so a freshly opened view starts in sync.
	index, active := fs.focus.Current()
	initial := interaction.FocusChange{Index: index, Active: active}
	if err := fs.write(ctx, conn, initial); err != nil {
		return
	}

	// Reads are discarded; they only surface client disconnects.
	go func() {
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case change := <-ch:
			if err := fs.write(ctx, conn, change); err != nil {
				return
			}
		}
	}
}

func (fs *FocusStream) write(ctx context.Context, conn *websocket.Conn, change interaction.FocusChange) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return wsjson.Write(writeCtx, conn, change)
}
