package ws

import (
	"net/http"

	"inclusive-jobs/internal/logger"
	"inclusive-jobs/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Handler struct {
	hub    *Hub
	jwt    jwt.Service
	logger *zap.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, log *zap.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwtSvc, logger: logger.OrNop(log)}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWS upgrades an authenticated connection. Browsers cannot set headers
// on the handshake, so the access token travels in the token query parameter.
func (h *Handler) HandleWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	userID, ok := h.authenticate(c.Query("token"))
	if !ok {
		return fiber.ErrUnauthorized
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("ws upgrade failed", zap.Error(err))
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}

func (h *Handler) authenticate(token string) (uuid.UUID, bool) {
	if token == "" || h.jwt == nil {
		return uuid.Nil, false
	}
	claims, err := h.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
