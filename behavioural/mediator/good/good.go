// Package good routes every chat message through a ChatMediator.
//
// Members only know the mediator. The mediator decides how a message is
// decorated (admin prefix, pinning) and fans it out to everyone except the
// sender concurrently, returning once every member has processed it.
package good

import (
	"context"
	"fmt"
	"sync"

	"github.com/sghaida/patterns/behavioural/mediator/internal/chat"
	"github.com/sghaida/patterns/internal/demo"
	"golang.org/x/sync/errgroup"
)

// Member is anything that can take part in a chat.
type Member interface {
	Name() string
	IsAdmin() bool
	Receive(ctx context.Context, text string, pinned bool) error
}

// ChatMediator owns the member list and the pinned message.
type ChatMediator struct {
	mu      sync.Mutex
	members []Member
	pins    chat.PinManager
}

func NewChatMediator() *ChatMediator { return &ChatMediator{} }

// Register adds m to the chat.
func (c *ChatMediator) Register(m Member) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.members = append(c.members, m)
}

// PinnedMessage is the last message an admin pinned.
func (c *ChatMediator) PinnedMessage() string { return c.pins.Pinned() }

// Broadcast delivers text to every member except sender and waits for all of
// them. The first receive error cancels the rest and is returned.
func (c *ChatMediator) Broadcast(ctx context.Context, sender Member, text string, pinned bool) error {
	msg := chat.Compose(&c.pins, sender.IsAdmin(), text, pinned)

	c.mu.Lock()
	members := append([]Member(nil), c.members...)
	c.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, m := range members {
		if m == sender {
			continue
		}
		g.Go(func() error { return m.Receive(gctx, msg, pinned) })
	}
	return g.Wait()
}

// participant is the state User and Admin share.
type participant struct {
	name string
	chat *ChatMediator
	env  demo.Env
}

func (p participant) Name() string { return p.name }

func (p participant) receive(ctx context.Context, admin bool, text string, pinned bool) error {
	if err := p.env.Sleep(ctx, chat.ReceiveDelay); err != nil {
		return err
	}
	fmt.Fprintln(p.env.Out, chat.Receipt(p.name, admin, text, pinned))
	return nil
}

type User struct {
	participant
}

func NewUser(env demo.Env, name string, c *ChatMediator) *User {
	return &User{participant{name: name, chat: c, env: env}}
}

func (u *User) IsAdmin() bool { return false }

func (u *User) Receive(ctx context.Context, text string, pinned bool) error {
	return u.receive(ctx, false, text, pinned)
}

func (u *User) SendMessage(ctx context.Context, text string) error {
	fmt.Fprintf(u.env.Out, "%s sends: %s\n", u.name, text)
	return u.chat.Broadcast(ctx, u, text, false)
}

type Admin struct {
	participant
}

func NewAdmin(env demo.Env, name string, c *ChatMediator) *Admin {
	return &Admin{participant{name: name, chat: c, env: env}}
}

func (a *Admin) IsAdmin() bool { return true }

func (a *Admin) Receive(ctx context.Context, text string, pinned bool) error {
	return a.receive(ctx, true, text, pinned)
}

func (a *Admin) SendMessage(ctx context.Context, text string) error {
	fmt.Fprintf(a.env.Out, "%s sends: %s\n", a.name, text)
	return a.chat.Broadcast(ctx, a, text, false)
}

// Pin broadcasts text as the pinned message.
func (a *Admin) Pin(ctx context.Context, text string) error {
	fmt.Fprintf(a.env.Out, "%s pins: %s\n", a.name, text)
	return a.chat.Broadcast(ctx, a, text, true)
}

// Run sets up two admins and two users and sends three messages.
func Run(ctx context.Context, env demo.Env) error {
	c := NewChatMediator()
	sysadmin := NewAdmin(env, "SysAdmin", c)
	moderator := NewAdmin(env, "Moderator", c)
	alice := NewUser(env, "Alice", c)
	bob := NewUser(env, "Bob", c)

	c.Register(sysadmin)
	c.Register(moderator)
	c.Register(alice)
	c.Register(bob)

	if err := alice.SendMessage(ctx, "Hello everyone!"); err != nil {
		return err
	}
	if err := sysadmin.SendMessage(ctx, "System maintenance at 3 AM"); err != nil {
		return err
	}
	return moderator.Pin(ctx, "Important update: Please read rules!")
}
