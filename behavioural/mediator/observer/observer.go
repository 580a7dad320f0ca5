// Package observer combines the chat mediator with a subscriber registry.
//
// Members subscribe to the mediator instead of being registered as fixed
// participants, and receive a MessageEvent describing each broadcast:
//   - Subscribe and Unsubscribe only lock around the registry mutation
//   - Broadcast snapshots the registry, notifies every subscriber
//     concurrently and waits for all of them
//   - subscribers ignore their own messages and report their own processing
//     failures instead of failing the broadcast
package observer

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sghaida/patterns/behavioural/mediator/internal/chat"
	"github.com/sghaida/patterns/internal/clock"
	"github.com/sghaida/patterns/internal/demo"
	"golang.org/x/sync/errgroup"
)

// Participant identifies who sent a message.
type Participant interface {
	Name() string
	IsAdmin() bool
}

// MessageEvent is the payload every subscriber receives.
type MessageEvent struct {
	ID     uuid.UUID
	Sender Participant
	Text   string
	Pinned bool
	SentAt time.Time
}

// Subscriber is notified of every broadcast. Implementations must be
// comparable (pointer receivers) so they can be unsubscribed.
type Subscriber interface {
	OnMessage(ctx context.Context, ev MessageEvent) error
}

// ChatMediator publishes chat messages to its subscribers.
type ChatMediator struct {
	mu     sync.Mutex
	subs   []Subscriber
	pins   chat.PinManager
	clock  clock.Clock
	logger *slog.Logger
}

func NewChatMediator(clk clock.Clock, logger *slog.Logger) *ChatMediator {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ChatMediator{clock: clk, logger: logger}
}

// Subscribe adds s. Subscribing twice is a no-op.
func (c *ChatMediator) Subscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if slices.Contains(c.subs, s) {
		return
	}
	c.subs = append(c.subs, s)
}

// Unsubscribe removes s if present.
func (c *ChatMediator) Unsubscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = slices.DeleteFunc(c.subs, func(x Subscriber) bool { return x == s })
}

// Len is the number of subscribers.
func (c *ChatMediator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

func (c *ChatMediator) PinnedMessage() string { return c.pins.Pinned() }

func (c *ChatMediator) snapshot() []Subscriber {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.subs)
}

// Broadcast notifies every current subscriber and waits for all of them.
// It returns the first error a subscriber reported.
func (c *ChatMediator) Broadcast(ctx context.Context, sender Participant, text string, pinned bool) error {
	ev := MessageEvent{
		ID:     uuid.New(),
		Sender: sender,
		Text:   chat.Compose(&c.pins, sender.IsAdmin(), text, pinned),
		Pinned: pinned,
		SentAt: c.clock.Now(),
	}
	subs := c.snapshot()

	c.logger.DebugContext(ctx, "broadcast",
		slog.String("id", ev.ID.String()),
		slog.String("sender", sender.Name()),
		slog.Int("subscribers", len(subs)),
	)

	var g errgroup.Group
	for _, s := range subs {
		g.Go(func() error { return s.OnMessage(ctx, ev) })
	}
	return g.Wait()
}

// Member is a chat participant that is also a subscriber.
type Member struct {
	name  string
	admin bool
	chat  *ChatMediator
	env   demo.Env
}

func NewUser(env demo.Env, name string, c *ChatMediator) *Member {
	return &Member{name: name, chat: c, env: env}
}

func NewAdmin(env demo.Env, name string, c *ChatMediator) *Member {
	return &Member{name: name, admin: true, chat: c, env: env}
}

func (m *Member) Name() string  { return m.name }
func (m *Member) IsAdmin() bool { return m.admin }

func (m *Member) SendMessage(ctx context.Context, text string) error {
	fmt.Fprintf(m.env.Out, "%s sends: %s\n", m.name, text)
	return m.chat.Broadcast(ctx, m, text, false)
}

// Pin broadcasts text as pinned. Only admin messages end up in the pin manager.
func (m *Member) Pin(ctx context.Context, text string) error {
	fmt.Fprintf(m.env.Out, "%s pins: %s\n", m.name, text)
	return m.chat.Broadcast(ctx, m, text, true)
}

// OnMessage implements Subscriber.
func (m *Member) OnMessage(ctx context.Context, ev MessageEvent) error {
	if ev.Sender == Participant(m) {
		return nil
	}
	if err := m.env.Sleep(ctx, chat.ReceiveDelay); err != nil {
		fmt.Fprintf(m.env.Out, "Error processing message for %s: %v\n", m.name, err)
		return nil
	}
	fmt.Fprintln(m.env.Out, chat.Receipt(m.name, m.admin, ev.Text, ev.Pinned))
	return nil
}

// Run subscribes two admins and two users and sends three messages.
func Run(ctx context.Context, env demo.Env) error {
	c := NewChatMediator(env.Clock, env.Logger)
	sysadmin := NewAdmin(env, "SysAdmin", c)
	moderator := NewAdmin(env, "Moderator", c)
	alice := NewUser(env, "Alice", c)
	bob := NewUser(env, "Bob", c)

	for _, m := range []*Member{sysadmin, moderator, alice, bob} {
		c.Subscribe(m)
	}

	if err := alice.SendMessage(ctx, "Hello everyone!"); err != nil {
		return err
	}
	if err := sysadmin.SendMessage(ctx, "System maintenance at 3 AM"); err != nil {
		return err
	}
	return moderator.Pin(ctx, "Important update: Please read rules!")
}
