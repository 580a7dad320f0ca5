// Package good puts a lazy proxy in front of the vendor video type.
//
// VideoProxy satisfies Video without downloading anything. The real
// YouTubeVideo, and with it the download, is created on the first Render and
// reused after that.
package good

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/sghaida/patterns/internal/demo"
)

var (
	ErrDuplicateVideo = errors.New("proxy: video already in list")
	ErrVideoNotFound  = errors.New("proxy: video not found")
)

type Video interface {
	Render()
	ID() string
}

// YouTubeVideo is vendor code: it downloads as soon as it is created.
type YouTubeVideo struct {
	out io.Writer
	id  string
}

func NewYouTubeVideo(out io.Writer, id string) *YouTubeVideo {
	v := &YouTubeVideo{out: out, id: id}
	fmt.Fprintf(out, "Downloading video %s from YouTube API\n", id)
	return v
}

func (v *YouTubeVideo) Render() { fmt.Fprintf(v.out, "Rendering video %s\n", v.id) }

func (v *YouTubeVideo) ID() string { return v.id }

// VideoProxy defers creating the real video until it is rendered.
type VideoProxy struct {
	out  io.Writer
	id   string
	once   sync.Once
	real   *YouTubeVideo
	loaded atomic.Bool
}

var _ Video = (*VideoProxy)(nil)

func NewVideoProxy(out io.Writer, id string) *VideoProxy {
	return &VideoProxy{out: out, id: id}
}

func (p *VideoProxy) Render() {
	p.once.Do(func() {
		p.real = NewYouTubeVideo(p.out, p.id)
		p.loaded.Store(true)
	})
	p.real.Render()
}

func (p *VideoProxy) ID() string { return p.id }

// Loaded reports whether the real video has been downloaded.
func (p *VideoProxy) Loaded() bool { return p.loaded.Load() }

type VideoList struct {
	mu     sync.RWMutex
	videos map[string]Video
}

func NewVideoList() *VideoList {
	return &VideoList{videos: map[string]Video{}}
}

func (l *VideoList) Add(v Video) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.videos[v.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateVideo, v.ID())
	}
	l.videos[v.ID()] = v
	return nil
}

func (l *VideoList) Watch(id string) error {
	l.mu.RLock()
	v, ok := l.videos[id]
	l.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrVideoNotFound, id)
	}
	v.Render()
	return nil
}

// Run lists three proxies and watches one, so only that one downloads.
func Run(_ context.Context, env demo.Env) error {
	list := NewVideoList()
	for _, id := range []string{"1234", "abcde", "javasc123"} {
		if err := list.Add(NewVideoProxy(env.Out, id)); err != nil {
			return err
		}
	}
	return list.Watch("abcde")
}
