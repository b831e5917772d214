package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doccat/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write configuration",
	Long: `Read and write values in the config file.

Keys use dots for nesting, e.g. catalog.path, processors.enabled,
processors.text.delay.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a config value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value...]",
	Short: "Set a config value",
	Long: `Set a config value. Booleans and integers are stored typed.
Several values are stored as a list, e.g.

  doccat config set processors.enabled text html`,
	Args: cobra.MinimumNArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if err := ensureConfig(); err != nil {
		return err
	}
	cmd.Println(configStore.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := ensureConfig(); err != nil {
		return err
	}

	key := args[0]
	val, ok := configStore.Get(key)
	if !ok {
		return fmt.Errorf("config key %q: %w", key, domain.ErrNotFound)
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := ensureConfig(); err != nil {
		return err
	}

	key := args[0]
	var val any
	if len(args) > 2 {
		val = args[1:]
	} else {
		val = parseConfigValue(args[1])
	}

	if err := configStore.Set(key, val); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %v\n", key, val)
	return nil
}

// parseConfigValue stores booleans and integers typed and everything else
// as a string. Durations stay strings and are parsed on read.
func parseConfigValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
