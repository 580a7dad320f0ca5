// Package registry keeps named prototypes and hands out clones of them.
//
// Callers ask the Registry for a key and get a fresh deep copy, typed through
// Get. With and CloneWith customise a value inline:
//
//	archer, err := Get[*User](reg, "attacker")
//	archer = With(archer, func(u *User) { u.Skills = append(u.Skills, "Fireball") })
package registry

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/sghaida/patterns/internal/demo"
)

var ErrUnknownRole = errors.New("prototype: unknown role")

// Cloner copies itself deeply.
type Cloner[T any] interface {
	Clone() T
}

// NotFoundError reports a key with no registered prototype.
type NotFoundError struct {
	Key string
}

func (e NotFoundError) Error() string {
	return "prototype: no prototype registered under " + strconv.Quote(e.Key)
}

// WrongTypeError reports a Get whose type parameter does not match the prototype.
type WrongTypeError struct {
	Key  string
	Want string
	Got  string
}

func (e WrongTypeError) Error() string {
	return "prototype: " + strconv.Quote(e.Key) + " holds " + e.Got + ", not " + e.Want
}

// Registry maps keys to prototypes. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	clones map[string]func() any
}

func New() *Registry {
	return &Registry{clones: map[string]func() any{}}
}

// Register stores proto under key, replacing any previous prototype.
func Register[T Cloner[T]](r *Registry, key string, proto T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clones[key] = func() any { return proto.Clone() }
}

// Get returns a clone of the prototype stored under key.
func Get[T any](r *Registry, key string) (T, error) {
	var zero T

	r.mu.RLock()
	clone, ok := r.clones[key]
	r.mu.RUnlock()
	if !ok {
		return zero, NotFoundError{Key: key}
	}

	v := clone()
	t, ok := v.(T)
	if !ok {
		return zero, WrongTypeError{Key: key, Want: reflect.TypeFor[T]().String(), Got: fmt.Sprintf("%T", v)}
	}
	return t, nil
}

// With applies fn to v and returns v.
func With[T any](v T, fn func(T)) T {
	fn(v)
	return v
}

// CloneWith clones v, applies fn to the clone and returns it.
func CloneWith[T Cloner[T]](v T, fn func(T)) T {
	c := v.Clone()
	fn(c)
	return c
}

type User struct {
	Username string
	Role     string
	Skills   []string
}

// Clone copies u including its skills.
func (u *User) Clone() *User {
	return &User{
		Username: u.Username,
		Role:     u.Role,
		Skills:   append([]string(nil), u.Skills...),
	}
}

func (u *User) String() string {
	return fmt.Sprintf("User: { Username: %s, Role: %s, Permissions: [%s] }",
		u.Username, u.Role, strings.Join(u.Skills, ", "))
}

// SkillsFor returns the starting skills of role.
func SkillsFor(role string) ([]string, error) {
	switch role {
	case "attacker":
		return []string{"Slash", "Pierce"}, nil
	case "defender":
		return []string{"Shield Block", "Parry"}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

// Run registers an attacker prototype and derives two users from it.
func Run(_ context.Context, env demo.Env) error {
	skills, err := SkillsFor("attacker")
	if err != nil {
		return err
	}
	attacker := &User{Username: "Bob", Role: "attacker", Skills: skills}
	fmt.Fprintln(env.Out, attacker)

	reg := New()
	Register(reg, "attacker", attacker)

	attacker2, err := Get[*User](reg, "attacker")
	if err != nil {
		return err
	}
	attacker2 = With(attacker2, func(u *User) { u.Skills = append(u.Skills, "Fireball") })
	fmt.Fprintln(env.Out, attacker2)

	attacker3 := CloneWith(attacker2, func(u *User) { u.Username = "Alice" })
	fmt.Fprintln(env.Out, attacker3)
	return nil
}
