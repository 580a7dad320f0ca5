// Package bad adds storage features by embedding, one type per combination.
//
// Encryption plus compression is its own type that repeats both
// transformations; caching on top would need yet another.
package bad

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sghaida/patterns/internal/demo"
)

var ErrNotFound = errors.New("decorator: file not found")

type FileStorage struct {
	Out   io.Writer
	files map[string]string
}

func NewFileStorage(out io.Writer) *FileStorage {
	return &FileStorage{Out: out, files: map[string]string{}}
}

func (s *FileStorage) WriteFile(path, data string) {
	s.files[path] = data
	fmt.Fprintf(s.Out, "Base write '%s': %s\n", path, data)
}

func (s *FileStorage) ReadFile(path string) (string, error) {
	data, ok := s.files[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return data, nil
}

type EncryptedFileStorage struct {
	*FileStorage
}

func (s EncryptedFileStorage) WriteFile(path, data string) {
	s.FileStorage.WriteFile(path, "🔒ENCRYPTED("+data+")🔒")
}

func (s EncryptedFileStorage) ReadFile(path string) (string, error) {
	data, err := s.FileStorage.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(strings.ReplaceAll(data, "🔒ENCRYPTED(", ""), ")🔒", ""), nil
}

type CompressedFileStorage struct {
	*FileStorage
}

func (s CompressedFileStorage) WriteFile(path, data string) {
	s.FileStorage.WriteFile(path, "🗜COMPRESSED("+data+")🗜")
}

func (s CompressedFileStorage) ReadFile(path string) (string, error) {
	data, err := s.FileStorage.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(strings.ReplaceAll(data, "🗜COMPRESSED(", ""), ")🗜", ""), nil
}

type EncryptedAndCompressedFileStorage struct {
	*FileStorage
}

func (s EncryptedAndCompressedFileStorage) WriteFile(path, data string) {
	encrypted := "🔒ENCRYPTED(" + data + ")🔒"
	compressed := "🗜COMPRESSED(" + encrypted + ")🗜"
	s.FileStorage.WriteFile(path, compressed)
}

func (s EncryptedAndCompressedFileStorage) ReadFile(path string) (string, error) {
	data, err := s.FileStorage.ReadFile(path)
	if err != nil {
		return "", err
	}
	decompressed := strings.ReplaceAll(strings.ReplaceAll(data, "🗜COMPRESSED(", ""), ")🗜", "")
	return strings.ReplaceAll(strings.ReplaceAll(decompressed, "🔒ENCRYPTED(", ""), ")🔒", ""), nil
}

// Run writes and reads back through the combined type.
func Run(_ context.Context, env demo.Env) error {
	storage := EncryptedAndCompressedFileStorage{FileStorage: NewFileStorage(env.Out)}
	storage.WriteFile("secret.txt", "Hello World")

	data, err := storage.ReadFile("secret.txt")
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "Read: %s\n", data)
	return nil
}
