package controls

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Panel serves the control table over a websocket at /ws and forwards
// every valid change onto a Queue. It never touches Params itself.
type Panel struct {
	queue    *Queue
	upgrader websocket.Upgrader

	mu      sync.Mutex
	server  *http.Server
	clients map[*websocket.Conn]struct{}
}

// tableMessage is sent once when a client connects.
type tableMessage struct {
	Controls []Control `json:"controls"`
}

// panelMessage is one client request. Value is used by numeric controls,
// Color by color pickers; action controls need neither.
type panelMessage struct {
	Control string    `json:"control"`
	Value   *float64  `json:"value,omitempty"`
	Color   []float64 `json:"color,omitempty"`
}

type replyMessage struct {
	Queued string `json:"queued,omitempty"`
	Error  string `json:"error,omitempty"`
}

func NewPanel(queue *Queue) *Panel {
	return &Panel{
		queue: queue,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // panel pages are served from anywhere during development
			},
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler returns the panel's routes.
func (p *Panel) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", p.handleWebSocket)
	return mux
}

// ListenAndServe blocks serving the panel on addr until Shutdown.
func (p *Panel) ListenAndServe(addr string) error {
	server := &http.Server{Addr: addr, Handler: p.Handler()}
	p.mu.Lock()
	p.server = server
	p.mu.Unlock()

	fmt.Printf("Control panel listening on ws://%s/ws\n", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("control panel: %w", err)
	}
	return nil
}

// Shutdown stops the server and closes every client connection.
func (p *Panel) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	server := p.server
	for conn := range p.clients {
		conn.Close()
	}
	p.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

func (p *Panel) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	p.mu.Lock()
	p.clients[conn] = struct{}{}
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		delete(p.clients, conn)
		p.mu.Unlock()
	}()

	if err := conn.WriteJSON(tableMessage{Controls: Table}); err != nil {
		log.Println("WebSocket write error:", err)
		return
	}

	for {
		var msg panelMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("WebSocket read error:", err)
			}
			return
		}

		reply := replyMessage{}
		cmd, err := parseMessage(msg)
		switch {
		case err != nil:
			reply.Error = err.Error()
		case !p.queue.Push(cmd):
			reply.Error = "command queue full"
		default:
			reply.Queued = cmd.Control
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.Println("WebSocket write error:", err)
			return
		}
	}
}

// parseMessage validates msg against the control table.
func parseMessage(msg panelMessage) (Command, error) {
	c, ok := Lookup(msg.Control)
	if !ok {
		return Command{}, fmt.Errorf("unknown control %q", msg.Control)
	}

	switch c.Kind {
	case KindAction:
		return Command{Kind: LoadScene, Control: c.Name}, nil
	case KindColor:
		if len(msg.Color) != 3 {
			return Command{}, fmt.Errorf("control %q needs a color [r,g,b]", c.Name)
		}
		var rgb RGB
		for i, ch := range msg.Color {
			if ch < 0 || ch > 255 {
				return Command{}, fmt.Errorf("control %q: channel %v outside 0-255", c.Name, ch)
			}
			rgb[i] = uint8(ch)
		}
		return Command{Kind: SetColor, Control: c.Name, Color: rgb}, nil
	default:
		if msg.Value == nil {
			return Command{}, fmt.Errorf("control %q needs a value", c.Name)
		}
		return Command{Kind: SetValue, Control: c.Name, Value: *msg.Value}, nil
	}
}
