// Package app holds the zwq commands.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yyyoichi/zerowidth/internal/config"
	"github.com/yyyoichi/zerowidth/internal/logger"
)

// NewRootCmd builds the zwq command tree around v.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "zwq",
		Short: "zwq hides text inside text with zero-width characters",
		Long: `zwq encodes a hidden message as invisible base-5 digit characters
and splices it into a visible carrier text.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ReadConfigFromViper(v)
			if err != nil {
				return err
			}
			l := logger.FromConfig(cfg.Log, cmd.ErrOrStderr())
			cmd.SetContext(l.WithContext(cmd.Context()))
			return nil
		},
	}
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", logger.Text, "Log format (text, json)")
	_ = config.BindFlag(v, "log.level", root.PersistentFlags(), "log-level")
	_ = config.BindFlag(v, "log.format", root.PersistentFlags(), "log-format")

	root.AddCommand(
		newEncodeCmd(v),
		newDecodeCmd(),
		newExtractCmd(),
		newSealCmd(v),
		newVerifyCmd(v),
	)
	return root
}

// Execute runs zwq and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(config.NewViper()).Execute(); err != nil {
		os.Exit(1)
	}
}

// inputText returns the first argument, or all of stdin when there is none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func loggerFrom(cmd *cobra.Command) *zerolog.Logger {
	return zerolog.Ctx(cmd.Context())
}
