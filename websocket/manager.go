package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// StatusEvent представляет событие хода анализа, рассылаемое подписчикам дашборда
type StatusEvent struct {
	Stage     string    `json:"stage"` // run_started, fetch, clean, score, aggregate, insights, run_finished, run_failed
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Manager управляет подключениями подписчиков статуса анализа
type Manager struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mu         sync.RWMutex
	upgrader   websocket.Upgrader
}

// NewManager создает новый менеджер WebSocket-подписчиков
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Дашборд может открываться с другого origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run обрабатывает регистрацию подписчиков и рассылку событий.
// Запускается в отдельной горутине.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			m.clients[client] = true
			m.mu.Unlock()
			log.Printf("✅ Подписчик статуса подключен, всего: %d", m.clientCount())

		case client := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[client]; ok {
				delete(m.clients, client)
				close(client.send)
			}
			m.mu.Unlock()
			log.Printf("⚠️ Подписчик статуса отключен, всего: %d", m.clientCount())

		case message := <-m.broadcast:
			m.mu.Lock()
			for client := range m.clients {
				select {
				case client.send <- message:
				default:
					// Медленный подписчик отключается
					close(client.send)
					delete(m.clients, client)
				}
			}
			m.mu.Unlock()
		}
	}
}

// HandleConnections обрабатывает входящие WebSocket-подключения дашборда
func (m *Manager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ Ошибка при обновлении соединения до WebSocket: %v", err)
		return
	}

	client := &Client{
		manager: m,
		conn:    conn,
		send:    make(chan []byte, 16),
	}

	m.register <- client

	go client.writePump()
	go client.readPump()
}

// BroadcastStatus рассылает событие хода анализа всем подписчикам
func (m *Manager) BroadcastStatus(stage, message string) {
	event := StatusEvent{
		Stage:     stage,
		Message:   message,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Ошибка при кодировании события статуса: %v", err)
		return
	}

	select {
	case m.broadcast <- data:
	default:
		// Канал рассылки переполнен, событие пропускается
	}
}

func (m *Manager) clientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
