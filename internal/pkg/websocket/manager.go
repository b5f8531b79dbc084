package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/internal/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Message is the frame pushed to browsers
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Client is one connected operator browser
type Client struct {
	ID       string
	Operator string
	send     chan Message
}

// Manager keeps the connected dashboard browsers and broadcasts change events to them
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a manager accepting the given origins; empty allows any
func NewManager(allowedOrigins []string) *Manager {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &Manager{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				return allowed[r.Header.Get("Origin")]
			},
		},
	}
}

// HandleConnection upgrades the request and streams broadcasts until the browser leaves
func (m *Manager) HandleConnection(c echo.Context, operator string) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		ID:       uuid.New().String(),
		Operator: operator,
		send:     make(chan Message, sendBuffer),
	}
	m.AddClient(client)
	defer m.RemoveClient(client.ID)

	done := make(chan struct{})
	go m.writePump(ws, client, done)
	m.readPump(ws)
	close(done)
	return nil
}

// readPump only watches for the close frame and pongs; browsers never send commands
func (m *Manager) readPump(ws *websocket.Conn) {
	defer ws.Close()
	ws.SetReadLimit(512)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (m *Manager) writePump(ws *websocket.Conn, client *Client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case msg := <-client.send:
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteJSON(msg); err != nil {
				logger.Debug("WebSocket write failed",
					logger.String("client_id", client.ID),
					logger.Err(err))
				ws.Close()
				return
			}
		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				ws.Close()
				return
			}
		}
	}
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.ID] = client
	logger.Debug("Dashboard stream connected",
		logger.String("client_id", client.ID),
		logger.String("operator", client.Operator))
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(clientID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, clientID)
}

// ClientCount reports how many browsers are connected
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// NewMessage encodes data into a frame
func NewMessage(event string, data interface{}) (Message, error) {
	rawData, err := json.Marshal(data)
	if err != nil {
		return Message{}, fmt.Errorf("error marshaling message data: %w", err)
	}
	return Message{Event: event, Data: rawData}, nil
}

// Broadcast queues the event for every connected browser. A browser whose buffer
// is full misses the event; it catches up on its next full refresh.
func (m *Manager) Broadcast(event string, data interface{}) error {
	msg, err := NewMessage(event, data)
	if err != nil {
		return err
	}

	m.RLock()
	defer m.RUnlock()
	for _, client := range m.clients {
		select {
		case client.send <- msg:
		default:
			logger.Warn("Dropping event for slow dashboard client",
				logger.String("client_id", client.ID),
				logger.String("event", event))
		}
	}
	return nil
}
