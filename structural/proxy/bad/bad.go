// Package bad adds real videos to the list, so every video downloads up front.
package bad

import (
	"context"
	"errors"
	"fmt"
	"io"

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
	v.download()
	return v
}

func (v *YouTubeVideo) download() {
	fmt.Fprintf(v.out, "Downloading video %s from YouTube API\n", v.id)
}

func (v *YouTubeVideo) Render() { fmt.Fprintf(v.out, "Rendering video %s\n", v.id) }

func (v *YouTubeVideo) ID() string { return v.id }

type VideoList struct {
	videos map[string]Video
}

func NewVideoList() *VideoList {
	return &VideoList{videos: map[string]Video{}}
}

func (l *VideoList) Add(v Video) error {
	if _, ok := l.videos[v.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateVideo, v.ID())
	}
	l.videos[v.ID()] = v
	return nil
}

func (l *VideoList) Watch(id string) error {
	v, ok := l.videos[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVideoNotFound, id)
	}
	v.Render()
	return nil
}

// Run lists three videos and watches one.
func Run(_ context.Context, env demo.Env) error {
	list := NewVideoList()
	for _, id := range []string{"1234", "abcde", "javasc123"} {
		if err := list.Add(NewYouTubeVideo(env.Out, id)); err != nil {
			return err
		}
	}
	return list.Watch("abcde")
}
