//go:build !js

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/party-pascal/internal/app"
)

func run() error {
	var (
		f    app.Flags
		mute bool
	)
	cmd := &cobra.Command{
		Use:           "party-web",
		Short:         "Play Party Pascal in a window",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			a, err := app.Open(f, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			env := a.NewEnv(nil)
			if !mute {
				mixer := a.OpenAudio()
				defer mixer.Close()
				env.Audio = mixer
			}
			return play(env, a.Runtime(0, 0))
		},
	}
	cmd.Flags().StringVar(&f.ConfigPath, "config", "", "Path to config YAML")
	cmd.Flags().IntVar(&f.FPS, "fps", 0, "Tick rate (0 = config value)")
	cmd.Flags().Int64Var(&f.Seed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().StringVar(&f.DBPath, "db", "", "Path to run history database")
	cmd.Flags().StringVar(&f.SettingsPath, "settings", "", "Path to settings file")
	cmd.Flags().BoolVar(&mute, "mute", false, "Disable audio")
	return cmd.Execute()
}
