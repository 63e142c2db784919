// Package tags reads the title and artist stored in audio files.
package tags

import (
	"errors"
	"os"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
)

// Metadata holds the tag fields used for matching.
type Metadata struct {
	Title   string
	Artist  string   // first value of the artist frame
	Artists []string // every value of the artist frame, in stored order
}

// ReadError reports that a file's tags could not be read at all.
// The message is the cause alone; callers already name the file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// Reader loads Metadata from a file on disk.
type Reader interface {
	Read(path string) (Metadata, error)
}

// ID3Reader reads ID3v2 frames and falls back to other containers
// (ID3v1, MP4, FLAC, OGG) when no ID3v2 frames are present.
type ID3Reader struct{}

// Read returns the title and artist of the file at path.
func (ID3Reader) Read(path string) (Metadata, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Title", "Artist"}})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		// ID3v2.2
		return readFallback(path)
	}
	if err != nil {
		return Metadata{}, &ReadError{Path: path, Err: err}
	}
	defer t.Close()

	if t.HasFrames() {
		return newMetadata(t.Title(), t.Artist()), nil
	}
	return readFallback(path)
}

func readFallback(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return Metadata{}, &ReadError{Path: path, Err: err}
	}
	return newMetadata(m.Title(), m.Artist()), nil
}

// newMetadata splits NUL-separated multi-value frames (ID3v2.4).
func newMetadata(title, artist string) Metadata {
	md := Metadata{
		Title:   firstValue(title),
		Artists: splitValues(artist),
	}
	if len(md.Artists) > 0 {
		md.Artist = md.Artists[0]
	}
	return md
}

func firstValue(raw string) string {
	values := splitValues(raw)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func splitValues(raw string) []string {
	raw = strings.Trim(raw, "\x00")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\x00")
}
