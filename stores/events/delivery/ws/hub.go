package ws

import (
	"encoding/json"
	"sync"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/notify"
	"github.com/x-xyz/marketclient/service/notifier"
)

const (
	EventHello            = "hello"
	EventNotification     = "notification"
	EventCatalogRefreshed = "catalog.refreshed"

	defaultBuffer = 16
)

type Event struct {
	Type         string               `json:"type"`
	Version      uint64               `json:"version,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
	// Listings is the snapshot size on catalog.refreshed
	Listings *int `json:"listings,omitempty"`
}

type client struct {
	send chan []byte
}

// Hub fans notifications out to every connected websocket. A client that can't keep
// up with its buffer is dropped.
type Hub struct {
	mu      sync.RWMutex
	buffer  int
	clients map[*client]struct{}
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		buffer:  buffer,
		clients: make(map[*client]struct{}),
	}
}

func (h *Hub) Notify(c ctx.Ctx, kind notify.Kind, message string) {
	n := notifier.NewNotification(kind, message)
	h.publish(c, Event{Type: EventNotification, Notification: &n})
}

// CatalogRefreshed hands subscribers the new version so they can refetch listings
func (h *Hub) CatalogRefreshed(c ctx.Ctx, snapshot *listing.Catalog) {
	size := len(snapshot.Listings)
	h.publish(c, Event{
		Type:     EventCatalogRefreshed,
		Version:  snapshot.Version,
		Listings: &size,
	})
}

func (h *Hub) publish(c ctx.Ctx, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return
	}
	h.broadcast(c, payload)
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register() *client {
	cl := &client{send: make(chan []byte, h.buffer)}
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
	return cl
}

// unregister closes the send channel once, whoever removes the client first
func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[cl]; !ok {
		return
	}
	delete(h.clients, cl)
	close(cl.send)
}

func (h *Hub) broadcast(c ctx.Ctx, payload []byte) {
	slow := []*client{}
	h.mu.RLock()
	for cl := range h.clients {
		select {
		case cl.send <- payload:
		default:
			slow = append(slow, cl)
		}
	}
	h.mu.RUnlock()

	for _, cl := range slow {
		c.WithField("clients", h.Len()).Warn("dropping slow websocket client")
		h.unregister(cl)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		delete(h.clients, cl)
		close(cl.send)
	}
}

// Close disconnects every client
func (h *Hub) Close(c ctx.Ctx) {
	c.WithFields(log.Fields{"clients": h.Len()}).Info("closing websocket hub")
	h.closeAll()
}
