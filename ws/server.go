package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"overlayServer/config"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  config.WSReadBufferSize,
	WriteBufferSize: config.WSWriteBufferSize,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Broadcast channels the overlay can subscribe to
const (
	ChannelEconomy   = "economy"
	ChannelBlackjack = "blackjack"
	ChannelRace      = "race"
	ChannelOverlay   = "overlay"
)

// ClientConnection represents a connected overlay client with its
// channel subscriptions.
type ClientConnection struct {
	ID            string
	Conn          *websocket.Conn
	Subscriptions map[string]bool
	mu            sync.RWMutex
	writeMutex    sync.Mutex // Protects websocket writes
	Send          chan []byte
}

var (
	// All connected clients
	clients      = make(map[*ClientConnection]bool)
	clientsMutex sync.RWMutex

	clientRegister   = make(chan *ClientConnection)
	clientUnregister = make(chan *ClientConnection)

	clientCount int64
)

func init() {
	go runEventHub()
}

// ClientCount returns the number of connected overlay clients.
func ClientCount() int64 {
	return atomic.LoadInt64(&clientCount)
}

// runEventHub owns the client registry
func runEventHub() {
	log.Println("🚀 Overlay event hub started")

	for {
		select {
		case client := <-clientRegister:
			clientsMutex.Lock()
			clients[client] = true
			clientsMutex.Unlock()
			atomic.AddInt64(&clientCount, 1)
			log.Printf("✅ Client registered: %s (Total: %d)", client.ID, ClientCount())

		case client := <-clientUnregister:
			clientsMutex.Lock()
			if _, ok := clients[client]; ok {
				delete(clients, client)
				close(client.Send)
				atomic.AddInt64(&clientCount, -1)
			}
			clientsMutex.Unlock()
			log.Printf("👋 Client unregistered: %s (Total: %d)", client.ID, ClientCount())
		}
	}
}

// Broadcast sends a message to every client subscribed to a channel.
func Broadcast(channel string, message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("❌ Failed to marshal message for %s: %v", channel, err)
		return
	}

	clientsMutex.RLock()
	defer clientsMutex.RUnlock()

	for client := range clients {
		client.mu.RLock()
		subscribed := client.Subscriptions[channel]
		client.mu.RUnlock()

		if subscribed {
			select {
			case client.Send <- data:
			default:
				// Client's send channel is full, skip
				log.Printf("⚠️  Client %s send buffer full, skipping message", client.ID)
			}
		}
	}
}

// HandleOverlayWS is the single WebSocket endpoint for the overlay UI.
func HandleOverlayWS(w http.ResponseWriter, r *http.Request) {
	log.Println("📥 Overlay WebSocket connection from:", r.RemoteAddr)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("❌ WebSocket upgrade failed:", err)
		return
	}
	conn.SetReadLimit(config.MaxMessageSize)

	client := &ClientConnection{
		ID:            uuid.New().String(),
		Conn:          conn,
		Subscriptions: make(map[string]bool),
		Send:          make(chan []byte, config.WSSendQueueSize),
	}

	clientRegister <- client

	go client.writePump()
	go client.readPump()
}

// writePump sends messages from the Send channel to the WebSocket
func (c *ClientConnection) writePump() {
	defer func() {
		c.Conn.Close()
	}()

	for message := range c.Send {
		c.writeMutex.Lock()
		err := c.Conn.WriteMessage(websocket.TextMessage, message)
		c.writeMutex.Unlock()

		if err != nil {
			log.Printf("❌ Write error for client %s: %v", c.ID, err)
			return
		}
	}
}

// readPump reads messages from the WebSocket and dispatches them
func (c *ClientConnection) readPump() {
	defer func() {
		clientUnregister <- c
		c.Conn.Close()
	}()

	for {
		_, messageBytes, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("❌ Read error for client %s: %v", c.ID, err)
			}
			break
		}

		var msg ClientMessage
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			log.Printf("❌ Failed to parse message from client %s: %v", c.ID, err)
			continue
		}

		c.handleMessage(msg)
	}
}

// send queues a message for one client only.
func (c *ClientConnection) send(message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("❌ Failed to marshal message for client %s: %v", c.ID, err)
		return
	}
	select {
	case c.Send <- data:
	default:
		log.Printf("⚠️  Client %s send buffer full, skipping message", c.ID)
	}
}
