// Package fireforget broadcasts chat messages without waiting for the
// subscribers, while still letting the caller observe completion.
//
// Broadcast starts the deliveries and returns a *Delivery straight away.
// The caller can ignore it, select on Done, or Wait for the outcome. Drain
// waits for every delivery the mediator has started.
package fireforget

import (
	"context"
	"errors"
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

// Participant is anyone who can send to the chat.
type Participant interface {
	Name() string
	IsAdmin() bool
}

// MessageEvent is what every subscriber receives for one broadcast.
type MessageEvent struct {
	ID     uuid.UUID
	Sender Participant
	Text   string
	Pinned bool
	SentAt time.Time
}

// Subscriber receives broadcasts.
type Subscriber interface {
	OnMessage(ctx context.Context, ev MessageEvent) error
}

// Delivery tracks one broadcast in flight.
type Delivery struct {
	ID   uuid.UUID
	done chan struct{}
	err  error
}

// Done is closed once every subscriber has been notified.
func (d *Delivery) Done() <-chan struct{} { return d.done }

// Wait blocks until the delivery completes and returns the first subscriber error.
func (d *Delivery) Wait() error {
	<-d.done
	return d.err
}

// ChatMediator fans messages out to its subscribers in the background.
type ChatMediator struct {
	mu       sync.Mutex
	subs     []Subscriber
	pending  []*Delivery
	inflight sync.WaitGroup
	pins     chat.PinManager
	clock    clock.Clock
	logger   *slog.Logger
}

// NewChatMediator defaults to the system clock and a discarding logger.
func NewChatMediator(clk clock.Clock, logger *slog.Logger) *ChatMediator {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ChatMediator{clock: clk, logger: logger}
}

// Subscribe registers s once; repeated calls are no-ops.
func (c *ChatMediator) Subscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.Contains(c.subs, s) {
		c.subs = append(c.subs, s)
	}
}

// Unsubscribe removes s. Deliveries already started still reach it.
func (c *ChatMediator) Unsubscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = slices.DeleteFunc(c.subs, func(x Subscriber) bool { return x == s })
}

// PinnedMessage returns the last pinned text, or "".
func (c *ChatMediator) PinnedMessage() string { return c.pins.Pinned() }

// Broadcast starts notifying the current subscribers and returns immediately.
// Subscribers see ctx; cancel it to abandon slow deliveries.
func (c *ChatMediator) Broadcast(ctx context.Context, sender Participant, text string, pinned bool) *Delivery {
	ev := MessageEvent{
		ID:     uuid.New(),
		Sender: sender,
		Text:   chat.Compose(&c.pins, sender.IsAdmin(), text, pinned),
		Pinned: pinned,
		SentAt: c.clock.Now(),
	}
	d := &Delivery{ID: ev.ID, done: make(chan struct{})}

	c.mu.Lock()
	subs := slices.Clone(c.subs)
	c.pending = append(c.pending, d)
	c.mu.Unlock()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer close(d.done)

		var g errgroup.Group
		for _, s := range subs {
			g.Go(func() error { return s.OnMessage(ctx, ev) })
		}
		d.err = g.Wait()
		if d.err != nil {
			c.logger.WarnContext(ctx, "delivery failed", slog.String("id", ev.ID.String()), slog.Any("error", d.err))
		}
	}()
	return d
}

// Drain waits for every delivery started so far and joins their errors.
func (c *ChatMediator) Drain() error {
	c.inflight.Wait()

	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	errs := make([]error, 0, len(pending))
	for _, d := range pending {
		errs = append(errs, d.Wait())
	}
	return errors.Join(errs...)
}

// Member is a chat participant that is also a subscriber.
type Member struct {
	name  string
	admin bool
	chat  *ChatMediator
	env   demo.Env
}

// NewUser returns a regular member.
func NewUser(env demo.Env, name string, c *ChatMediator) *Member {
	return &Member{name: name, chat: c, env: env}
}

// NewAdmin returns a member whose messages carry the admin prefix and who may pin.
func NewAdmin(env demo.Env, name string, c *ChatMediator) *Member {
	return &Member{name: name, admin: true, chat: c, env: env}
}

func (m *Member) Name() string  { return m.name }
func (m *Member) IsAdmin() bool { return m.admin }

// SendMessage broadcasts text without waiting for delivery.
func (m *Member) SendMessage(ctx context.Context, text string) *Delivery {
	fmt.Fprintf(m.env.Out, "%s sends: %s\n", m.name, text)
	return m.chat.Broadcast(ctx, m, text, false)
}

// Pin broadcasts text as a pinned message.
func (m *Member) Pin(ctx context.Context, text string) *Delivery {
	fmt.Fprintf(m.env.Out, "%s pins: %s\n", m.name, text)
	return m.chat.Broadcast(ctx, m, text, true)
}

// OnMessage prints the receipt for every message m did not send itself.
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

// Run sends three messages without waiting on any of them, then drains.
func Run(ctx context.Context, env demo.Env) error {
	c := NewChatMediator(env.Clock, env.Logger)
	sysadmin := NewAdmin(env, "SysAdmin", c)
	moderator := NewAdmin(env, "Moderator", c)
	alice := NewUser(env, "Alice", c)
	bob := NewUser(env, "Bob", c)

	for _, m := range []*Member{sysadmin, moderator, alice, bob} {
		c.Subscribe(m)
	}

	alice.SendMessage(ctx, "Hello everyone!")
	sysadmin.SendMessage(ctx, "System maintenance at 3 AM")
	moderator.Pin(ctx, "Important update: Please read rules!")

	return c.Drain()
}
