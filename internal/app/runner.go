package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"mp3-validate/internal/config"
	"mp3-validate/internal/confirm"
	"mp3-validate/internal/reference"
	"mp3-validate/internal/tags"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
)

const audioPattern = "*.mp3"

var (
	errIsDirectory = errors.New("is a directory")

	warnColor   = color.New(color.FgYellow)
	deleteColor = color.New(color.FgRed, color.Bold)
)

type runner struct {
	cfg     config.Config
	opts    Options
	valid   reference.Set
	tags    tags.Reader
	confirm confirm.Confirmer
	log     *log.Logger
	stats   runStats
}

type runStats struct {
	scanned   int
	matched   int
	skipped   int
	protected int
	failed    int
	deleted   int
	declined  int
}

type outcome int

const (
	outcomeMatched outcome = iota
	outcomeUnmatched
	outcomeMissingMetadata
	outcomeReadError
)

// fileResult is the verdict for one file. err is set only for outcomeReadError.
type fileResult struct {
	name    string
	path    string
	outcome outcome
	meta    tags.Metadata
	err     error
}

func newRunner(cfg config.Config, opts Options, valid reference.Set, reader tags.Reader, confirmer confirm.Confirmer) *runner {
	if opts.Normalize {
		valid = valid.Normalized()
	}
	return &runner{
		cfg:     cfg,
		opts:    opts,
		valid:   valid,
		tags:    reader,
		confirm: confirmer,
		log:     log.New(os.Stdout, "mp3-validate: ", log.LstdFlags),
	}
}

func (r *runner) Execute() error {
	r.log.Printf("Validating %s against %d reference song(s)", r.cfg.MusicFolder, r.valid.Len())

	entries, err := os.ReadDir(r.cfg.MusicFolder)
	if err != nil {
		return fmt.Errorf("read music folder: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		ok, err := isAudioFile(name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		protected, err := r.isProtected(name)
		if err != nil {
			return err
		}
		if protected {
			r.stats.protected++
			r.log.Printf("Keeping protected file: %s", name)
			continue
		}

		r.stats.scanned++
		if err := r.handle(r.checkFile(name, entry.IsDir())); err != nil {
			return err
		}
	}

	r.log.Printf("Validation complete (scanned %d, matched %d, skipped %d, protected %d, errors %d, deleted %d, kept on request %d)",
		r.stats.scanned, r.stats.matched, r.stats.skipped, r.stats.protected, r.stats.failed, r.stats.deleted, r.stats.declined)
	return nil
}

func (r *runner) checkFile(name string, isDir bool) fileResult {
	path := filepath.Join(r.cfg.MusicFolder, name)
	res := fileResult{name: name, path: path}
	if isDir {
		res.outcome = outcomeReadError
		res.err = errIsDirectory
		return res
	}

	meta, err := r.tags.Read(path)
	if err != nil {
		res.outcome = outcomeReadError
		res.err = err
		return res
	}
	res.meta = meta

	if meta.Title == "" || meta.Artist == "" {
		res.outcome = outcomeMissingMetadata
		return res
	}
	if r.valid.Contains(r.keyFor(meta)) {
		res.outcome = outcomeMatched
	} else {
		res.outcome = outcomeUnmatched
	}
	return res
}

// keyFor compares the raw artist frame unless normalisation was requested.
func (r *runner) keyFor(meta tags.Metadata) reference.Key {
	if !r.opts.Normalize {
		return reference.KeyFor(meta.Title, meta.Artist)
	}
	return reference.Normalize(reference.KeyFor(meta.Title, reference.JoinArtists(meta.Artists)))
}

func (r *runner) handle(res fileResult) error {
	switch res.outcome {
	case outcomeReadError:
		r.stats.failed++
		r.log.Print(warnColor.Sprintf("Error reading metadata from %s: %v", res.name, res.err))
		return nil
	case outcomeMissingMetadata:
		r.stats.skipped++
		r.log.Printf("Skipping file with missing metadata: %s", res.name)
		return nil
	case outcomeMatched:
		r.stats.matched++
		return nil
	}

	r.log.Print(deleteColor.Sprintf("Deleting unmatched file: %s :: %s - %s", res.name, res.meta.Title, res.meta.Artist))
	ok, err := r.confirm.Confirm(fmt.Sprintf("Delete %s?", res.name))
	if err != nil {
		return err
	}
	if !ok {
		r.stats.declined++
		r.log.Printf("Kept %s", res.name)
		return nil
	}
	if err := os.Remove(res.path); err != nil {
		return fmt.Errorf("remove %q: %w", res.path, err)
	}
	r.stats.deleted++
	return nil
}

func (r *runner) isProtected(name string) (bool, error) {
	for _, pattern := range r.cfg.KeepPatterns {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid MUSIC_KEEP pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func isAudioFile(name string) (bool, error) {
	return doublestar.Match(audioPattern, strings.ToLower(name))
}
