package kds

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/bar-app/utils"
)

// Event types
const (
	EventTableCreate   = "table_create"
	EventTableDelete   = "table_delete"
	EventTableUpdate   = "table_update"
	EventOrderUpdate   = "order_update"
	EventOrderReady    = "order_ready"
	EventOrderServed   = "order_served"
	EventTableClosed   = "table_closed"
	EventMenuUpdate    = "menu_update"
	EventExpenseUpdate = "expense_update"
	EventDraftUpdate   = "draft_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// KDSHub menampung semua client (dapur, atendente, gerente) yang terhubung
type KDSHub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var kdsHub = KDSHub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	kdsHub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	delete(kdsHub.clients, conn)
	conn.Close()
}

// ClientCount returns the number of connected clients.
func ClientCount() int {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	return len(kdsHub.clients)
}

// BroadcastMessage -> broadcast pesan umum ke semua client
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

// Broadcast sends data under event to every client.
func Broadcast(event string, data interface{}) {
	broadcast(Message{Event: event, Data: data})
}

func broadcast(msg Message) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()

	if len(kdsHub.clients) == 0 {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		utils.Error().Errorf("Error marshaling message: %v", err)
		return
	}

	for conn, role := range kdsHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.Error().WithField("role", role).Errorf("Error sending %s to client: %v", msg.Event, err)
			continue
		}
	}
	utils.Info().Debugf("Broadcast %s to %d clients", msg.Event, len(kdsHub.clients))
}
