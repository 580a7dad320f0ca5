// Package chat holds the message formatting and pin bookkeeping shared by the
// mediator variants.
package chat

import (
	"strings"
	"sync"
	"time"
)

// ReceiveDelay is how long a member takes to process one incoming message.
const ReceiveDelay = 50 * time.Millisecond

// PinManager stores the currently pinned message.
type PinManager struct {
	mu     sync.Mutex
	pinned string
}

func (p *PinManager) Pin(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pinned = text
}

func (p *PinManager) Pinned() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pinned
}

// Compose returns the text members receive. Admin messages get an [ADMIN]
// prefix; a pinned admin message is recorded in pins and additionally
// prefixed with PINNED.
func Compose(pins *PinManager, fromAdmin bool, text string, pinned bool) string {
	if !fromAdmin {
		return text
	}
	out := "[ADMIN] " + text
	if pinned {
		pins.Pin(text)
		out = "PINNED: " + out
	}
	return out
}

// Receipt renders the line a member prints for a received message.
func Receipt(name string, admin bool, text string, pinned bool) string {
	kind, marker := "user", "📌 "
	if admin {
		kind, marker = "admin", "🔔 "
	}
	if !pinned {
		marker = ""
	}
	return "[" + kind + " " + strings.ToUpper(name) + " chat] " + marker + text
}
