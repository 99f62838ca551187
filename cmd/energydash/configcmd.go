package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"energydash/internal/config"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, or write it to a file",
		RunE:  runConfig,
	}

	configOut string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVarP(&configOut, "out", "o", "", "write the configuration to this file instead of stdout")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configOut != "" {
		if err := config.Save(cfg, configOut); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), configOut)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
