package ws

import (
	"sync"

	"inclusive-jobs/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type envelope struct {
	userID  uuid.UUID
	message []byte
}

// Hub tracks live connections per user and fans messages out to them.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	send       chan envelope
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
	logger     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		send:       make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger.OrNop(log).Named("ws"),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.closeAll()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
			total := h.countLocked()
			h.mutex.Unlock()
			h.logger.Debug("ws connected", zap.Stringer("user_id", client.userID), zap.Int("total_clients", total))

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.removeLocked(client)
			total := h.countLocked()
			h.mutex.Unlock()
			h.logger.Debug("ws disconnected", zap.Stringer("user_id", client.userID), zap.Int("total_clients", total))

		case env := <-h.send:
			h.mutex.Lock()
			delivered := 0
			for client := range h.clients[env.userID] {
				select {
				case client.send <- env.message:
					delivered++
				default:
					h.removeLocked(client)
				}
			}
			h.mutex.Unlock()
			h.logger.Debug("ws message sent", zap.Stringer("user_id", env.userID), zap.Int("clients", delivered))
		}
	}
}

func (h *Hub) removeLocked(client *Client) {
	set, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
}

func (h *Hub) countLocked() int {
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, set := range h.clients {
		for client := range set {
			h.removeLocked(client)
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// SendToUser queues message for every connection of userID. It never blocks;
// when the queue is full the message is dropped.
func (h *Hub) SendToUser(userID uuid.UUID, message []byte) {
	if h == nil {
		return
	}
	select {
	case h.send <- envelope{userID: userID, message: message}:
	default:
		h.logger.Warn("ws message dropped", zap.String("reason", "buffer_full"))
	}
}

func (h *Hub) Stop() {
	if h == nil {
		return
	}
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.countLocked()
}
