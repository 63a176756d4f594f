// Package bot provides the scripted bots the demo binary registers with the
// console. Real deployments hand the console their own live bot objects; a
// scripted bot just keeps enough state to drive the pages and the relay.
package bot

import (
	"fmt"
	"strings"
	"sync"
)

const defaultMood = "neutral"

// Scripted is a minimal bot: a running flag behind Status, a mutable mood,
// and a small command vocabulary. It guards its own state, since dashboard
// renders and command deliveries can arrive on different goroutines.
type Scripted struct {
	name string

	mu      sync.Mutex
	running bool
	mood    string
}

func NewScripted(name, mood string, running bool) *Scripted {
	if mood == "" {
		mood = defaultMood
	}
	return &Scripted{name: name, running: running, mood: mood}
}

func (b *Scripted) Name() string {
	return b.name
}

func (b *Scripted) Status() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		return "UP"
	}
	return "DOWN"
}

func (b *Scripted) Mood() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.mood
}

// HandleCommand accepts "start", "stop", and "set mood <mood>". Anything
// else is an error reported back through the relay.
func (b *Scripted) HandleCommand(cmd string) error {
	cmd = strings.TrimSpace(cmd)

	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case cmd == "start":
		b.running = true
	case cmd == "stop":
		b.running = false
	case strings.HasPrefix(cmd, "set mood "):
		mood := strings.TrimSpace(strings.TrimPrefix(cmd, "set mood "))
		if mood == "" {
			return fmt.Errorf("bot %s: mood must not be empty", b.name)
		}
		b.mood = mood
	default:
		return fmt.Errorf("bot %s: unknown command %q", b.name, cmd)
	}
	return nil
}
