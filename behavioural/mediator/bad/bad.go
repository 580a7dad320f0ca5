// Package bad wires chat participants straight to each other.
//
// Users and admins each keep their own lists of who to notify and walk them
// one by one. Every new participant has to be registered with every other
// participant by hand.
package bad

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sghaida/patterns/internal/demo"
)

const receiveDelay = 50 * time.Millisecond

type User struct {
	Name   string
	env    demo.Env
	users  []*User
	admins []*Admin
}

func NewUser(env demo.Env, name string) *User { return &User{Name: name, env: env} }

func (u *User) RegisterUser(other *User)   { u.users = append(u.users, other) }
func (u *User) RegisterAdmin(admin *Admin) { u.admins = append(u.admins, admin) }

func (u *User) SendMessage(ctx context.Context, message string) error {
	fmt.Fprintf(u.env.Out, "%s sends: %s\n", u.Name, message)

	for _, other := range u.users {
		if other == u {
			continue
		}
		if err := other.ReceiveMessage(ctx, message, false); err != nil {
			return err
		}
	}
	for _, admin := range u.admins {
		if err := admin.ReceiveMessage(ctx, message, false); err != nil {
			return err
		}
	}
	return nil
}

func (u *User) ReceiveMessage(ctx context.Context, message string, pinned bool) error {
	if err := u.env.Sleep(ctx, receiveDelay); err != nil {
		return err
	}
	marker := ""
	if pinned {
		marker = "📌 "
	}
	fmt.Fprintf(u.env.Out, "[user %s chat] %s%s\n", strings.ToUpper(u.Name), marker, message)
	return nil
}

type Admin struct {
	Name   string
	env    demo.Env
	users  []*User
	admins []*Admin
}

func NewAdmin(env demo.Env, name string) *Admin { return &Admin{Name: name, env: env} }

func (a *Admin) RegisterUser(user *User)    { a.users = append(a.users, user) }
func (a *Admin) RegisterAdmin(other *Admin) { a.admins = append(a.admins, other) }

func (a *Admin) SendMessage(ctx context.Context, message string) error {
	fmt.Fprintf(a.env.Out, "%s sends: %s\n", a.Name, message)
	formatted := "[ADMIN] " + message

	for _, user := range a.users {
		if err := user.ReceiveMessage(ctx, formatted, false); err != nil {
			return err
		}
	}
	for _, other := range a.admins {
		if other == a {
			continue
		}
		if err := other.ReceiveMessage(ctx, formatted, false); err != nil {
			return err
		}
	}
	return nil
}

func (a *Admin) ReceiveMessage(ctx context.Context, message string, pinned bool) error {
	if err := a.env.Sleep(ctx, receiveDelay); err != nil {
		return err
	}
	marker := ""
	if pinned {
		marker = "🔔 "
	}
	fmt.Fprintf(a.env.Out, "[admin %s chat] %s%s\n", strings.ToUpper(a.Name), marker, message)
	return nil
}

// Run registers SysAdmin and Alice with each other and has both speak.
func Run(ctx context.Context, env demo.Env) error {
	sysadmin := NewAdmin(env, "SysAdmin")
	alice := NewUser(env, "Alice")

	sysadmin.RegisterUser(alice)
	alice.RegisterAdmin(sysadmin)

	if err := alice.SendMessage(ctx, "Hello everyone!"); err != nil {
		return err
	}
	return sysadmin.SendMessage(ctx, "System maintenance at 3 AM")
}
