package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/2beens/befit/internal/telemetry/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type EventType string

const (
	EventThemeChanged    EventType = "theme_changed"
	EventFoodAdded       EventType = "food_added"
	EventFoodDeleted     EventType = "food_deleted"
	EventWeightAdded     EventType = "weight_added"
	EventExerciseToggled EventType = "exercise_toggled"
	EventSessionStarted  EventType = "session_started"
	EventSessionFinished EventType = "session_finished"
	EventSettingsChanged EventType = "settings_changed"
)

type Event struct {
	Type EventType `json:"type"`
	At   time.Time `json:"at"`
	Data any       `json:"data,omitempty"`
}

// Subscriber is called synchronously for every published event.
type Subscriber func(Event)

const clientSendBuffer = 16

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans change events out to connected websocket clients and to
// in-process subscribers.
type Hub struct {
	mu          sync.RWMutex
	clients     map[*client]struct{}
	subscribers []Subscriber
	closed      bool

	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHub(metricsManager *metrics.Manager) *Hub {
	return &Hub{
		clients:        make(map[*client]struct{}),
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (h *Hub) Subscribe(s Subscriber) {
	h.mu.Lock()
	h.subscribers = append(h.subscribers, s)
	h.mu.Unlock()
}

func (h *Hub) Publish(eventType EventType, data any) {
	event := Event{
		Type: eventType,
		At:   h.now(),
		Data: data,
	}

	h.mu.RLock()
	subscribers := make([]Subscriber, len(h.subscribers))
	copy(subscribers, h.subscribers)
	h.mu.RUnlock()

	for _, s := range subscribers {
		s(event)
	}

	msg, err := json.Marshal(event)
	if err != nil {
		log.Errorf("realtime: marshal event %s: %s", eventType, err)
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		log.Warnf("realtime: client %s too slow, dropping it", c.id)
		h.unregister(c)
	}
}

func (h *Hub) ClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(conn *websocket.Conn) (*client, bool) {
	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, clientSendBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	h.clients[c] = struct{}{}
	h.setClientsGauge()
	return c, true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.setClientsGauge()
	h.mu.Unlock()
}

// Close disconnects every client. Publish keeps working for subscribers.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.setClientsGauge()
	h.mu.Unlock()
}

// must hold h.mu
func (h *Hub) setClientsGauge() {
	if h.metricsManager != nil {
		h.metricsManager.GaugeRealtimeClients.Set(float64(len(h.clients)))
	}
}
