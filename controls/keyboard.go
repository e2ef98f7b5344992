package controls

// KeySource reports whether a key is held down. platform.Window satisfies it.
type KeySource interface {
	IsKeyPressed(key int) bool
}

// KeyBindings maps actions to key codes.
type KeyBindings struct {
	LevelUp     int
	LevelDown   int
	OctavesUp   int
	OctavesDown int
	LoadScene   int
	Quit        int
}

// Keyboard turns key presses into commands. Each press yields one command
// regardless of how long the key is held.
type Keyboard struct {
	src      KeySource
	bindings KeyBindings
	watched  []int
	keys     map[int]bool
	keysPrev map[int]bool
}

func NewKeyboard(src KeySource, bindings KeyBindings) *Keyboard {
	k := &Keyboard{
		src:      src,
		bindings: bindings,
		keys:     make(map[int]bool),
		keysPrev: make(map[int]bool),
	}
	b := bindings
	for _, key := range []int{b.LevelUp, b.LevelDown, b.OctavesUp, b.OctavesDown, b.LoadScene, b.Quit} {
		if _, seen := k.keys[key]; !seen {
			k.keys[key] = false
			k.watched = append(k.watched, key)
		}
	}
	return k
}

// Poll samples the bound keys once per frame and returns the commands for
// keys pressed since the previous poll, and whether quit was pressed.
func (k *Keyboard) Poll() (cmds []Command, quit bool) {
	for _, key := range k.watched {
		k.keysPrev[key] = k.keys[key]
		k.keys[key] = k.src.IsKeyPressed(key)
	}

	b := k.bindings
	if k.pressed(b.LevelUp) {
		cmds = append(cmds, Command{Kind: Adjust, Control: Tesselations, Value: 1})
	}
	if k.pressed(b.LevelDown) {
		cmds = append(cmds, Command{Kind: Adjust, Control: Tesselations, Value: -1})
	}
	if k.pressed(b.OctavesUp) {
		cmds = append(cmds, Command{Kind: Adjust, Control: Octaves, Value: 1})
	}
	if k.pressed(b.OctavesDown) {
		cmds = append(cmds, Command{Kind: Adjust, Control: Octaves, Value: -1})
	}
	if k.pressed(b.LoadScene) {
		cmds = append(cmds, Command{Kind: LoadScene, Control: LoadSceneName})
	}
	return cmds, k.pressed(b.Quit)
}

func (k *Keyboard) pressed(key int) bool {
	return k.keys[key] && !k.keysPrev[key]
}
