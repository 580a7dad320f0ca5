// Package good stacks storage features as decorators chosen at run time.
//
// Every decorator implements Storage and wraps another Storage, so
// encryption, compression and caching combine in any order without a type
// per combination.
package good

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sghaida/patterns/internal/demo"
)

var ErrNotFound = errors.New("decorator: file not found")

type Storage interface {
	WriteFile(path, data string) error
	ReadFile(path string) (string, error)
}

// Basic keeps files in memory and reports every write.
type Basic struct {
	out   io.Writer
	mu    sync.RWMutex
	files map[string]string
}

func NewBasic(out io.Writer) *Basic {
	return &Basic{out: out, files: map[string]string{}}
}

func (s *Basic) WriteFile(path, data string) error {
	s.mu.Lock()
	s.files[path] = data
	s.mu.Unlock()

	fmt.Fprintf(s.out, "Base write '%s': %s\n", path, data)
	return nil
}

func (s *Basic) ReadFile(path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.files[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return data, nil
}

// wrapper wraps data in prefix and suffix on the way down and strips them on the way up.
type wrapper struct {
	next   Storage
	prefix string
	suffix string
}

func (w wrapper) WriteFile(path, data string) error {
	return w.next.WriteFile(path, w.prefix+data+w.suffix)
}

func (w wrapper) ReadFile(path string) (string, error) {
	data, err := w.next.ReadFile(path)
	if err != nil {
		return "", err
	}
	data = strings.TrimPrefix(data, w.prefix)
	return strings.TrimSuffix(data, w.suffix), nil
}

// NewEncrypted encrypts data before it reaches next.
func NewEncrypted(next Storage) Storage {
	return wrapper{next: next, prefix: "🔒ENCRYPTED(", suffix: ")🔒"}
}

// NewCompressed compresses data before it reaches next.
func NewCompressed(next Storage) Storage {
	return wrapper{next: next, prefix: "🗜COMPRESSED(", suffix: ")🗜"}
}

// Cached serves repeated reads from memory. Writes go through and refresh the cache.
type Cached struct {
	next Storage

	mu    sync.Mutex
	cache map[string]string
	hits  int
}

func NewCached(next Storage) *Cached {
	return &Cached{next: next, cache: map[string]string{}}
}

func (c *Cached) WriteFile(path, data string) error {
	if err := c.next.WriteFile(path, data); err != nil {
		return err
	}
	c.mu.Lock()
	c.cache[path] = data
	c.mu.Unlock()
	return nil
}

func (c *Cached) ReadFile(path string) (string, error) {
	c.mu.Lock()
	if data, ok := c.cache[path]; ok {
		c.hits++
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	data, err := c.next.ReadFile(path)
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	c.cache[path] = data
	c.mu.Unlock()
	return data, nil
}

// Hits reports how many reads the cache answered.
func (c *Cached) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}

// Run composes cache, encryption and compression over the in-memory store.
func Run(_ context.Context, env demo.Env) error {
	var storage Storage = NewBasic(env.Out)
	storage = NewCompressed(storage)
	storage = NewEncrypted(storage)
	storage = NewCached(storage)

	if err := storage.WriteFile("secret.txt", "Hello World"); err != nil {
		return err
	}
	data, err := storage.ReadFile("secret.txt")
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "Read: %s\n", data)
	return nil
}
