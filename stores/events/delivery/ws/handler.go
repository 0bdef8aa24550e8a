package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/goroutine"
	"github.com/x-xyz/marketclient/domain/listing"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type handler struct {
	hub     *Hub
	catalog listing.Usecase
}

func New(e *echo.Echo, hub *Hub, catalog listing.Usecase) {
	h := &handler{hub, catalog}

	e.GET("/events", h.events)
}

func (h *handler) events(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		ctx.WithField("err", err).Warn("upgrader.Upgrade failed")
		return nil
	}

	cl := h.hub.register()
	hello := Event{Type: EventHello}
	if snapshot := h.catalog.Snapshot(); snapshot != nil {
		hello.Version = snapshot.Version
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(hello); err != nil {
		ctx.WithField("err", err).Warn("conn.WriteJSON failed")
		h.hub.unregister(cl)
		conn.Close()
		return nil
	}

	goroutine.RecoverableGo(func() {
		h.writeLoop(ctx, conn, cl)
	}, goroutine.WithName("events.writeLoop"))

	h.readLoop(ctx, conn, cl)
	return nil
}

// readLoop only keeps the connection alive, inbound messages are ignored
func (h *handler) readLoop(ctx ctx.Ctx, conn *websocket.Conn, cl *client) {
	defer h.hub.unregister(cl)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ctx.WithField("err", err).Warn("websocket closed unexpectedly")
			}
			return
		}
	}
}

func (h *handler) writeLoop(ctx ctx.Ctx, conn *websocket.Conn, cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case payload, ok := <-cl.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				ctx.WithField("err", err).Debug("conn.WriteMessage failed")
				h.hub.unregister(cl)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.hub.unregister(cl)
				return
			}
		}
	}
}
