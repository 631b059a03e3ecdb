package clob

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
)

const (
	// writeWait is the time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// pongWait is the time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// pingPeriod sends pings to the peer at this interval. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// PriceUpdate is one live price event for an outcome token.
type PriceUpdate struct {
	AssetID   string
	Price     float64
	Size      float64
	Timestamp time.Time
}

// PriceHandler is called for every price update received on the feed.
type PriceHandler func(PriceUpdate)

// wsCommand is the JSON payload sent to subscribe to the market channel.
type wsCommand struct {
	Type   string   `json:"type"`
	Assets []string `json:"assets_ids,omitempty"`
}

// wsEvent is the outer envelope of every frame from the market data feed.
type wsEvent struct {
	EventType string `json:"event_type"` // "book", "price_change", "last_trade_price"
	AssetID   string `json:"asset_id"`
	Price     string `json:"price"`
	Size      string `json:"size"`
	Timestamp string `json:"timestamp"`
}

// WSClient is a WebSocket client for the order-book market data feed. It
// manages the connection lifecycle and dispatches price updates to
// registered handlers. One client serves one watch session.
type WSClient struct {
	wsURL string

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool

	handlerMu sync.RWMutex
	handlers  []PriceHandler

	done chan struct{}
}

// NewWSClient creates a client for the given feed endpoint, e.g.
// "wss://ws-subscriptions-clob.polymarket.com/ws/market".
func NewWSClient(wsURL string) *WSClient {
	return &WSClient{
		wsURL: wsURL,
		done:  make(chan struct{}),
	}
}

// OnPrice registers a handler for incoming price updates.
func (w *WSClient) OnPrice(h PriceHandler) {
	w.handlerMu.Lock()
	defer w.handlerMu.Unlock()
	w.handlers = append(w.handlers, h)
}

// Connect establishes the WebSocket connection and starts the read and ping
// loops. The loops stop when Close is called or the peer goes away.
func (w *WSClient) Connect(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("clob/ws: client closed")
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 15 * time.Second,
	}
	conn, _, err := dialer.DialContext(ctx, w.wsURL, nil)
	if err != nil {
		return fmt.Errorf("clob/ws: %w: connect: %v", domain.ErrUnreachable, err)
	}
	w.conn = conn

	w.conn.SetReadDeadline(time.Now().Add(pongWait))
	w.conn.SetPongHandler(func(string) error {
		w.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go w.readLoop()
	go w.pingLoop()

	return nil
}

// Subscribe subscribes to the market channel for the given outcome tokens.
func (w *WSClient) Subscribe(assetIDs []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn == nil {
		return fmt.Errorf("clob/ws: not connected")
	}

	cmd := wsCommand{Type: "market", Assets: assetIDs}
	w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := w.conn.WriteJSON(cmd); err != nil {
		return fmt.Errorf("clob/ws: subscribe: %w", err)
	}
	return nil
}

// Close shuts the client down. Safe to call more than once.
func (w *WSClient) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	close(w.done)
	if w.conn != nil {
		w.conn.Close()
	}
}

// Done is closed when the connection has terminated for any reason.
func (w *WSClient) Done() <-chan struct{} {
	return w.done
}

func (w *WSClient) readLoop() {
	defer w.Close()

	for {
		_, data, err := w.conn.ReadMessage()
		if err != nil {
			return
		}

		// The feed batches events into arrays; single objects appear on
		// some message types.
		var events []wsEvent
		if err := json.Unmarshal(data, &events); err != nil {
			var single wsEvent
			if err := json.Unmarshal(data, &single); err != nil {
				continue
			}
			events = []wsEvent{single}
		}

		for _, ev := range events {
			w.dispatch(ev)
		}
	}
}

func (w *WSClient) dispatch(ev wsEvent) {
	if ev.EventType != "last_trade_price" && ev.EventType != "price_change" {
		return
	}

	update := PriceUpdate{AssetID: ev.AssetID}
	update.Price, _ = strconv.ParseFloat(ev.Price, 64)
	update.Size, _ = strconv.ParseFloat(ev.Size, 64)
	if ts, err := strconv.ParseInt(ev.Timestamp, 10, 64); err == nil {
		update.Timestamp = time.UnixMilli(ts)
	} else {
		update.Timestamp = time.Now()
	}

	w.handlerMu.RLock()
	handlers := w.handlers
	w.handlerMu.RUnlock()
	for _, h := range handlers {
		h(update)
	}
}

func (w *WSClient) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.mu.Lock()
			conn := w.conn
			w.mu.Unlock()
			if conn == nil {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				w.Close()
				return
			}
		case <-w.done:
			return
		}
	}
}
