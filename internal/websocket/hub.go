package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = pongWait * 9 / 10
	sendBuffer   = 256
	publishQueue = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are already restricted by the CORS settings of the API.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// TokenVerifier validates the token passed in the ws query string.
type TokenVerifier interface {
	Enabled() bool
	VerifyToken(tokenString string) error
}

// Message is the JSON frame pushed to every subscriber.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans record events out to the lookup widgets connected on /ws.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}

	outbox chan []byte
	join   chan *subscriber
	leave  chan *subscriber
	done   chan struct{}
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
		outbox:      make(chan []byte, publishQueue),
		join:        make(chan *subscriber),
		leave:       make(chan *subscriber),
		done:        make(chan struct{}),
		logger:      logger,
	}
}

// Run dispatches hub events until ctx is cancelled. It must be called once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for s := range h.subscribers {
				h.drop(s)
			}
			h.mu.Unlock()
			return

		case s := <-h.join:
			h.mu.Lock()
			h.subscribers[s] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("websocket subscriber joined")

		case s := <-h.leave:
			h.mu.Lock()
			if _, ok := h.subscribers[s]; ok {
				h.drop(s)
				h.logger.Debug("websocket subscriber left")
			}
			h.mu.Unlock()

		case payload := <-h.outbox:
			h.mu.Lock()
			for s := range h.subscribers {
				select {
				case s.send <- payload:
				default:
					// slow consumer
					h.drop(s)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop must be called with mu held.
func (h *Hub) drop(s *subscriber) {
	close(s.send)
	delete(h.subscribers, s)
}

// Publish queues event for every subscriber. It never blocks the caller:
// when the queue is full the message is dropped.
func (h *Hub) Publish(event string, data any) {
	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		h.logger.Error("failed to encode websocket message", zap.String("event", event), zap.Error(err))
		return
	}
	select {
	case h.outbox <- payload:
	default:
		h.logger.Warn("websocket publish queue full, dropping message", zap.String("event", event))
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

func (h *Hub) write(s *subscriber) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// read drains the connection; subscribers never send commands.
func (h *Hub) read(s *subscriber) {
	defer func() {
		select {
		case h.leave <- s:
		case <-h.done:
		}
		_ = s.conn.Close()
	}()

	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
	}
}

// ServeWs upgrades the request. With authentication enabled the token query parameter must be valid.
func ServeWs(hub *Hub, c *gin.Context, verifier TokenVerifier) {
	if verifier != nil && verifier.Enabled() {
		if err := verifier.VerifyToken(c.Query("token")); err != nil {
			hub.logger.Info("websocket connection rejected", zap.Error(err))
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		hub.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	s := &subscriber{conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case hub.join <- s:
	case <-hub.done:
		_ = conn.Close()
		return
	}

	go hub.write(s)
	go hub.read(s)
}
