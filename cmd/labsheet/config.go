package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configPath returns the TOML configuration file location in the
// platform's user configuration directory.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "labsheet.toml"), nil
}

// loadConfig reads the configuration file if one exists. A missing file
// is not an error; a malformed one is reported and ignored, matching the
// tool's best-effort attitude toward configuration.
func loadConfig() *viper.Viper {
	v := viper.New()
	path, err := configPath()
	if err != nil {
		return v
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				fmt.Fprintf(os.Stderr, "Warning: malformed configuration\n  %v\n", err)
			}
		}
	}
	return v
}

var trailingInt = regexp.MustCompile(`(\d+)$`)

// configCheckpoints looks up the checkpoint list for a lab in the
// configuration's checkpoints table. Keys are matched on their trailing
// integer, so "lab3", "Lab 3" and "3" all configure lab 3.
func configCheckpoints(v *viper.Viper, lab int) []string {
	table := v.GetStringMapStringSlice("checkpoints")
	for key, labels := range table {
		m := trailingInt.FindString(key)
		if m == "" {
			continue
		}
		if fmt.Sprint(lab) == m {
			return labels
		}
	}
	return nil
}

var editConfigCmd = &cobra.Command{
	Use:   "edit-config",
	Short: "Open the configuration file in your editor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "open"
		}
		edit := exec.Command(editor, path)
		edit.Stdin = os.Stdin
		edit.Stdout = os.Stdout
		edit.Stderr = os.Stderr
		return edit.Run()
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	},
}
