// Init command for the gameshelf CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize gameshelf storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		// PersistentPreRunE already ensured the config directory and a
		// default config.yaml; opening the store creates the data dir.
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		fmt.Println("Gameshelf initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}
