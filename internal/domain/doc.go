// Package domain defines the bot capability surface the web console consumes
// and the shared value types the views render.
package domain
