package realtime

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub держит счётчик подключённых браузерных сессий и рассылает его
// всем клиентам при каждом подключении и отключении. Состояние живёт
// только в процессе: создаётся на старте сервера, гасится при остановке.
type Hub struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*websocket.Conn
	closed   bool
}

type activeUsersMessage struct {
	ActiveUsers int `json:"activeUsers"`
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			// CORS открыт для всех, как и у REST-эндпоинтов.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions: make(map[string]*websocket.Conn),
	}
}

// Handle апгрейдит соединение и блокируется до отключения клиента.
func (h *Hub) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("Не удалось установить websocket-соединение", zap.Error(err))
		return
	}

	id := uuid.NewString()
	h.register(id, conn)
	h.log.Info("Сессия подключена", zap.String("session", id), zap.Int("activeUsers", h.ActiveUsers()))

	// Входящие сообщения не нужны, читаем только ради detect disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.unregister(id)
	h.log.Info("Сессия отключена", zap.String("session", id), zap.Int("activeUsers", h.ActiveUsers()))
}

func (h *Hub) ActiveUsers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

func (h *Hub) register(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		_ = conn.Close()
		return
	}
	h.sessions[id] = conn
	h.broadcastLocked()
}

func (h *Hub) unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn, ok := h.sessions[id]
	if !ok {
		return
	}
	delete(h.sessions, id)
	_ = conn.Close()
	h.broadcastLocked()
}

// broadcastLocked рассылает актуальный счётчик; вызывается под h.mu.
func (h *Hub) broadcastLocked() {
	msg := activeUsersMessage{ActiveUsers: len(h.sessions)}
	for id, conn := range h.sessions {
		if err := conn.WriteJSON(msg); err != nil {
			h.log.Warn("Не удалось отправить счётчик сессий",
				zap.String("session", id), zap.Error(err))
		}
	}
}

// Close разрывает все соединения; новые подключения после Close не принимаются.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, conn := range h.sessions {
		_ = conn.Close()
		delete(h.sessions, id)
	}
}
