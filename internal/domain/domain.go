package domain

// Bot is the capability surface the console needs from a live bot. The bot
// objects themselves are owned by the hosting process; the console only holds
// references and never manages their lifecycle.
type Bot interface {
	// Status returns a short descriptive string ("UP", "DOWN", ...).
	Status() string
	// Mood returns the bot's current mood.
	Mood() string
	// HandleCommand delivers free-form console input to the bot. It runs
	// synchronously on the caller's goroutine and returns any failure the
	// bot reports.
	HandleCommand(cmd string) error
}

// BotView is a per-bot render row. Status and Mood are read from the live
// handle at request time, never cached.
type BotView struct {
	Name   string
	Status string
	Mood   string
}
