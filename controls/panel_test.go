package controls

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func dialPanel(t *testing.T, q *Queue) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(NewPanel(q).Handler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	var table tableMessage
	if err := conn.ReadJSON(&table); err != nil {
		t.Fatalf("read control table: %v", err)
	}
	if len(table.Controls) != len(Table) {
		t.Fatalf("expected %d controls, got %d", len(Table), len(table.Controls))
	}
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg any) replyMessage {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}
	var reply replyMessage
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read reply: %v", err)
	}
	return reply
}

func TestPanelQueuesCommands(t *testing.T) {
	q := NewQueue(8)
	conn := dialPanel(t, q)

	if r := send(t, conn, map[string]any{"control": "Frequency", "value": 3}); r.Queued != Frequency {
		t.Errorf("unexpected reply %+v", r)
	}
	if r := send(t, conn, map[string]any{"control": "BaseColor", "color": []int{0, 128, 255}}); r.Error != "" {
		t.Errorf("unexpected reply %+v", r)
	}
	if r := send(t, conn, map[string]any{"control": "Load Scene"}); r.Error != "" {
		t.Errorf("unexpected reply %+v", r)
	}

	cmds := q.Drain()
	want := []Command{
		{Kind: SetValue, Control: Frequency, Value: 3},
		{Kind: SetColor, Control: BaseColor, Color: RGB{0, 128, 255}},
		{Kind: LoadScene, Control: LoadSceneName},
	}
	if len(cmds) != len(want) {
		t.Fatalf("expected %d commands, got %v", len(want), cmds)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d: expected %v, got %v", i, want[i], cmds[i])
		}
	}
}

func TestPanelRejectsBadMessages(t *testing.T) {
	q := NewQueue(8)
	conn := dialPanel(t, q)

	bad := []map[string]any{
		{"control": "Speed", "value": 1},
		{"control": "Frequency"},
		{"control": "BaseColor", "color": []int{255, 0}},
		{"control": "BaseColor", "color": []int{256, 0, 0}},
		{"control": "TertiaryColor", "value": 1},
	}
	for _, msg := range bad {
		if r := send(t, conn, msg); r.Error == "" {
			t.Errorf("%v: expected an error reply, got %+v", msg, r)
		}
	}
	if cmds := q.Drain(); len(cmds) != 0 {
		t.Errorf("rejected messages reached the queue: %v", cmds)
	}
}

func TestPanelQueueFull(t *testing.T) {
	q := NewQueue(1)
	conn := dialPanel(t, q)

	send(t, conn, map[string]any{"control": "Load Scene"})
	if r := send(t, conn, map[string]any{"control": "Load Scene"}); r.Error != "command queue full" {
		t.Errorf("expected queue full error, got %+v", r)
	}
}
