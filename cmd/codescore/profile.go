package main

import (
	"github.com/dshills/codescore/internal/profile"
	"github.com/spf13/cobra"
)

type profileFlags struct {
	name string
	file string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "profile", profile.DefaultName, "Built-in scoring profile name")
	cmd.Flags().StringVar(&f.file, "profile-file", "", "Path to a custom YAML scoring profile (overrides --profile)")
}

// load resolves the scoring profile. Failures are input errors (exit 3).
func (f *profileFlags) load() (*profile.Profile, error) {
	if f.file != "" {
		p, err := profile.Load(f.file)
		if err != nil {
			return nil, exitError(3, "failed to load profile: %v", err)
		}
		return p, nil
	}
	p, err := profile.LoadBuiltin(f.name)
	if err != nil {
		return nil, exitError(3, "failed to load profile: %v", err)
	}
	return p, nil
}
