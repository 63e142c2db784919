package reference

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildSet(t *testing.T) {
	songs := []Song{
		{Name: "Song A", Artists: []string{"Artist X"}},
		{Name: "Song B", Artists: []string{"Artist Y", "Artist Z"}},
		{Name: "Song C", Artists: nil},
	}

	set := BuildSet(songs)
	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", set.Len())
	}

	want := []Key{
		{Title: "Song A", Artist: "Artist X"},
		{Title: "Song B", Artist: "Artist Y/Artist Z"},
		{Title: "Song C", Artist: ""},
	}
	for _, k := range want {
		if !set.Contains(k) {
			t.Fatalf("set missing key %+v", k)
		}
	}
	if set.Contains(KeyFor("Song B", "Artist Y")) {
		t.Fatalf("partial artist list should not match")
	}
}

func TestBuildSetOrderIndependent(t *testing.T) {
	a := []Song{
		{Name: "One", Artists: []string{"A"}},
		{Name: "Two", Artists: []string{"B", "C"}},
	}
	b := []Song{a[1], a[0]}

	setA, setB := BuildSet(a), BuildSet(b)
	if setA.Len() != setB.Len() {
		t.Fatalf("sizes differ: %d vs %d", setA.Len(), setB.Len())
	}
	for k := range setA {
		if !setB.Contains(k) {
			t.Fatalf("key %+v missing after reorder", k)
		}
	}
}

func TestBuildSetDuplicatesAndEmpty(t *testing.T) {
	dup := []Song{
		{Name: "Same", Artists: []string{"A"}},
		{Name: "Same", Artists: []string{"A"}},
	}
	if got := BuildSet(dup).Len(); got != 1 {
		t.Fatalf("duplicate songs produced %d keys, want 1", got)
	}
	if got := BuildSet(nil).Len(); got != 0 {
		t.Fatalf("empty input produced %d keys, want 0", got)
	}
}

func TestJoinArtistsKeepsOrder(t *testing.T) {
	if got := JoinArtists([]string{"B", "A"}); got != "B/A" {
		t.Fatalf("JoinArtists = %q, want %q", got, "B/A")
	}
}

func TestNormalized(t *testing.T) {
	// "e" followed by a combining acute accent.
	decomposed := "Cafe\u0301"
	set := BuildSet([]Song{{Name: decomposed, Artists: []string{"Björk"}}})

	composed := KeyFor("Caf\u00e9", "Björk")
	if set.Contains(composed) {
		t.Fatalf("raw set should not match composed form")
	}
	if !set.Normalized().Contains(Normalize(composed)) {
		t.Fatalf("normalized set should match composed form")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"sync file", `{"type":"sync","songs":[{"name":"Song A","artists":["Artist X"],"album_name":"X"}]}`, 1, false},
		{"missing songs key", `{"type":"sync"}`, 0, false},
		{"bare list", `[{"name":"A","artists":["B"]},{"name":"C","artists":["D"]}]`, 2, false},
		{"malformed", `{"songs": [`, 0, true},
		{"empty", ``, 0, true},
	}

	for _, tt := range tests {
		songs, err := Parse([]byte(tt.input))
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error, got nil", tt.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if songs == nil {
			t.Fatalf("%s: songs should never be nil", tt.name)
		}
		if len(songs) != tt.want {
			t.Fatalf("%s: got %d songs, want %d", tt.name, len(songs), tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.spotdl")
	data := `{"songs":[{"name":"Song A","artists":["Artist X"]}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	songs, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(songs) != 1 || songs[0].Name != "Song A" || songs[0].Artists[0] != "Artist X" {
		t.Fatalf("unexpected songs: %+v", songs)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.spotdl")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
