package controls

import "testing"

type fakeKeys map[int]bool

func (k fakeKeys) IsKeyPressed(key int) bool { return k[key] }

var testBindings = KeyBindings{
	LevelUp:     265,
	LevelDown:   264,
	OctavesUp:   262,
	OctavesDown: 263,
	LoadScene:   76,
	Quit:        256,
}

func TestKeyboardEdgeTriggered(t *testing.T) {
	keys := fakeKeys{}
	kb := NewKeyboard(keys, testBindings)

	keys[testBindings.LevelUp] = true
	cmds, quit := kb.Poll()
	if quit {
		t.Error("unexpected quit")
	}
	if len(cmds) != 1 || cmds[0] != (Command{Kind: Adjust, Control: Tesselations, Value: 1}) {
		t.Fatalf("expected one level-up command, got %v", cmds)
	}

	// Held key does not repeat.
	if cmds, _ := kb.Poll(); len(cmds) != 0 {
		t.Errorf("expected no commands while held, got %v", cmds)
	}

	keys[testBindings.LevelUp] = false
	kb.Poll()
	keys[testBindings.LevelUp] = true
	if cmds, _ := kb.Poll(); len(cmds) != 1 {
		t.Errorf("expected a second press to register, got %v", cmds)
	}
}

func TestKeyboardBindings(t *testing.T) {
	keys := fakeKeys{
		testBindings.LevelDown:   true,
		testBindings.OctavesUp:   true,
		testBindings.OctavesDown: true,
		testBindings.LoadScene:   true,
		testBindings.Quit:        true,
	}
	kb := NewKeyboard(keys, testBindings)

	cmds, quit := kb.Poll()
	if !quit {
		t.Error("expected quit")
	}
	want := []Command{
		{Kind: Adjust, Control: Tesselations, Value: -1},
		{Kind: Adjust, Control: Octaves, Value: 1},
		{Kind: Adjust, Control: Octaves, Value: -1},
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

func TestKeyboardSharedKey(t *testing.T) {
	b := testBindings
	b.Quit = b.LoadScene
	keys := fakeKeys{b.LoadScene: true}
	kb := NewKeyboard(keys, b)

	cmds, quit := kb.Poll()
	if !quit || len(cmds) != 1 {
		t.Errorf("expected load and quit from one key, got %v, %v", cmds, quit)
	}
}
