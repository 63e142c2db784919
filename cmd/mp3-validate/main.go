package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"mp3-validate/internal/app"
	"mp3-validate/internal/confirm"

	"github.com/spf13/pflag"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := app.Run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, out io.Writer) (app.Options, error) {
	fs := pflag.NewFlagSet("mp3-validate", pflag.ContinueOnError)
	fs.SetOutput(out)

	envFile := fs.String("env-file", "", "Env file to load instead of ./.env")
	policy := fs.String("confirm", string(confirm.PolicyPrompt), "Deletion policy: prompt, yes or dry-run")
	normalize := fs.Bool("normalize", false, "Join every artist value with \"/\" and compare NFC-normalized strings")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintln(fs.Output(), "Environment: SPOTDL_FILE and MUSIC_FOLDER are required; MUSIC_KEEP is optional.")
		fmt.Fprintln(fs.Output(), "Exit status: 0 on success, 1 on missing configuration or a failed run, 2 on bad flags.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return app.Options{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return app.Options{}, fmt.Errorf("unexpected argument(s): %s", strings.Join(fs.Args(), " "))
	}

	p, err := confirm.ParsePolicy(*policy)
	if err != nil {
		return app.Options{}, err
	}

	return app.Options{
		EnvFile:   strings.TrimSpace(*envFile),
		Policy:    p,
		Normalize: *normalize,
	}, nil
}
