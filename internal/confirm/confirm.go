// Package confirm decides whether an unmatched file may be deleted.
package confirm

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Policy names a confirmation strategy.
type Policy string

const (
	PolicyPrompt Policy = "prompt"
	PolicyYes    Policy = "yes"
	PolicyDryRun Policy = "dry-run"
)

// Policies lists every accepted policy name.
var Policies = []Policy{PolicyPrompt, PolicyYes, PolicyDryRun}

// ParsePolicy maps a flag value to a Policy. Empty means PolicyPrompt.
func ParsePolicy(raw string) (Policy, error) {
	value := Policy(strings.ToLower(strings.TrimSpace(raw)))
	if value == "" {
		return PolicyPrompt, nil
	}
	for _, p := range Policies {
		if value == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown confirmation policy %q (want prompt, yes or dry-run)", raw)
}

// Confirmer is asked once per deletion. An error aborts the run.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Func adapts a plain function to Confirmer.
type Func func(prompt string) (bool, error)

// Confirm calls f.
func (f Func) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

// Auto confirms every deletion.
type Auto struct{}

// Confirm always returns true.
func (Auto) Confirm(string) (bool, error) { return true, nil }

// DryRun declines every deletion.
type DryRun struct{}

// Confirm always returns false.
func (DryRun) Confirm(string) (bool, error) { return false, nil }

// Prompt asks on the terminal. Enter accepts the default answer (yes).
type Prompt struct {
	// Stdio overrides the process terminal when set.
	Stdio *terminal.Stdio
}

// Confirm shows prompt as a yes/no question. Ctrl-C returns an error.
func (p Prompt) Confirm(prompt string) (bool, error) {
	var opts []survey.AskOpt
	if p.Stdio != nil {
		opts = append(opts, survey.WithStdio(p.Stdio.In, p.Stdio.Out, p.Stdio.Err))
	}

	ok := false
	q := &survey.Confirm{Message: prompt, Default: true}
	if err := survey.AskOne(q, &ok, opts...); err != nil {
		if err == terminal.InterruptErr {
			return false, fmt.Errorf("confirmation interrupted")
		}
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return ok, nil
}

// New builds the Confirmer for a policy.
func New(policy Policy) (Confirmer, error) {
	switch policy {
	case PolicyPrompt, "":
		return Prompt{}, nil
	case PolicyYes:
		return Auto{}, nil
	case PolicyDryRun:
		return DryRun{}, nil
	default:
		return nil, fmt.Errorf("unknown confirmation policy %q", policy)
	}
}
