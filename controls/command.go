package controls

import "fmt"

type CommandKind int

const (
	SetValue CommandKind = iota
	// Adjust adds Value to the control's current value.
	Adjust
	SetColor
	LoadScene
)

func (k CommandKind) String() string {
	switch k {
	case SetValue:
		return "set"
	case Adjust:
		return "adjust"
	case SetColor:
		return "color"
	case LoadScene:
		return "load"
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Command is one control change, produced by a panel or key binding and
// applied by the frame loop.
type Command struct {
	Kind    CommandKind
	Control string
	Value   float64
	Color   RGB
}

func (c Command) String() string {
	switch c.Kind {
	case SetColor:
		return fmt.Sprintf("%s %s=%v", c.Kind, c.Control, c.Color)
	case LoadScene:
		return fmt.Sprintf("%s %s", c.Kind, c.Control)
	}
	return fmt.Sprintf("%s %s=%g", c.Kind, c.Control, c.Value)
}

// Queue carries commands from any goroutine to the single goroutine that
// owns Params.
type Queue struct {
	ch chan Command
}

func NewQueue(size int) *Queue {
	return &Queue{ch: make(chan Command, size)}
}

// Push enqueues cmd without blocking. It returns false when the queue is
// full and the command was dropped.
func (q *Queue) Push(cmd Command) bool {
	select {
	case q.ch <- cmd:
		return true
	default:
		return false
	}
}

// Drain returns every queued command in arrival order without blocking.
func (q *Queue) Drain() []Command {
	var cmds []Command
	for {
		select {
		case cmd := <-q.ch:
			cmds = append(cmds, cmd)
		default:
			return cmds
		}
	}
}
