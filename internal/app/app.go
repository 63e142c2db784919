package app

import (
	"mp3-validate/internal/config"
	"mp3-validate/internal/confirm"
	"mp3-validate/internal/reference"
	"mp3-validate/internal/tags"
)

// Options captures user-supplied CLI parameters before config/env enrichment.
type Options struct {
	EnvFile   string
	Policy    confirm.Policy
	Normalize bool
}

// Run is the entry point for the validation workflow.
func Run(opts Options) error {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return err
	}

	songs, err := reference.Load(cfg.SpotdlFile)
	if err != nil {
		return err
	}

	confirmer, err := confirm.New(opts.Policy)
	if err != nil {
		return err
	}

	return newRunner(cfg, opts, reference.BuildSet(songs), tags.ID3Reader{}, confirmer).Execute()
}
