// Package reference loads the spotDL song list and derives the set of
// (title, artist) pairs that are allowed to exist in the music folder.
package reference

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ArtistSeparator joins multiple artists into the single string stored in tags.
const ArtistSeparator = "/"

// Song is one entry of the reference list.
type Song struct {
	Name    string   `json:"name"`
	Artists []string `json:"artists"`
}

type syncFile struct {
	Songs []Song `json:"songs"`
}

// Load parses a spotDL sync file. A bare JSON array of songs is accepted as well.
func Load(path string) ([]Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference file: %w", err)
	}
	return Parse(data)
}

// Parse decodes reference JSON. A missing "songs" key yields an empty list.
func Parse(data []byte) ([]Song, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var songs []Song
		if err := json.Unmarshal(trimmed, &songs); err != nil {
			return nil, fmt.Errorf("decode reference list: %w", err)
		}
		return songs, nil
	}

	var f syncFile
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, fmt.Errorf("decode reference file: %w", err)
	}
	if f.Songs == nil {
		return []Song{}, nil
	}
	return f.Songs, nil
}

// Key identifies a song by title and the "/"-joined artist string.
type Key struct {
	Title  string
	Artist string
}

// KeyFor pairs a title with an already joined artist string.
func KeyFor(title, artist string) Key {
	return Key{Title: title, Artist: artist}
}

// JoinArtists joins artists with ArtistSeparator, keeping their order.
func JoinArtists(artists []string) string {
	return strings.Join(artists, ArtistSeparator)
}

// Normalize returns the NFC form of both fields.
func Normalize(k Key) Key {
	return Key{Title: norm.NFC.String(k.Title), Artist: norm.NFC.String(k.Artist)}
}

// Set is the valid set built from the reference list.
type Set map[Key]struct{}

// BuildSet derives one key per song. Duplicates collapse.
func BuildSet(songs []Song) Set {
	set := make(Set, len(songs))
	for _, song := range songs {
		set[KeyFor(song.Name, JoinArtists(song.Artists))] = struct{}{}
	}
	return set
}

// Contains reports whether k is a valid pair.
func (s Set) Contains(k Key) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of distinct pairs.
func (s Set) Len() int {
	return len(s)
}

// Normalized returns a copy of the set with every key passed through Normalize.
func (s Set) Normalized() Set {
	out := make(Set, len(s))
	for k := range s {
		out[Normalize(k)] = struct{}{}
	}
	return out
}
