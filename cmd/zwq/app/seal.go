package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yyyoichi/zerowidth/internal/config"
	"github.com/yyyoichi/zerowidth/seal"
)

var (
	errNoSealKey    = errors.New("no seal key: set --key or ZWQ_SEAL_KEY")
	errSealMismatch = errors.New("seal does not match the text")
)

func newSealCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seal [TEXT]",
		Short: "Hide a keyed tag of a text inside it",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindSealFlags(v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			s, err := newSealer(v)
			if err != nil {
				return err
			}
			sealed, err := s.Seal(text)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), sealed)
			return nil
		},
	}
	addSealFlags(cmd)
	return cmd
}

func newVerifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [TEXT]",
		Short: "Check the seal hidden in a text",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindSealFlags(v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			s, err := newSealer(v)
			if err != nil {
				return err
			}
			ok, sealedAt, err := s.Verify(text)
			if err != nil {
				return err
			}
			loggerFrom(cmd).Debug().Bool("ok", ok).Time("sealed_at", sealedAt).Msg("verified seal")
			if !ok {
				return errSealMismatch
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok, sealed at %s\n", sealedAt.UTC().Format(time.RFC3339))
			return nil
		},
	}
	addSealFlags(cmd)
	return cmd
}

func addSealFlags(cmd *cobra.Command) {
	cmd.Flags().String("key", "", "Master key")
	cmd.Flags().String("salt", "", "Key derivation salt")
}

// bindSealFlags binds the flags of the running command only, since seal and
// verify share the same keys.
func bindSealFlags(v *viper.Viper, cmd *cobra.Command) error {
	if err := config.BindFlag(v, "seal.key", cmd.Flags(), "key"); err != nil {
		return err
	}
	return config.BindFlag(v, "seal.salt", cmd.Flags(), "salt")
}

func newSealer(v *viper.Viper) (*seal.Sealer, error) {
	cfg, err := config.ReadConfigFromViper(v)
	if err != nil {
		return nil, err
	}
	if cfg.Seal.Key == "" {
		return nil, errNoSealKey
	}
	return seal.New([]byte(cfg.Seal.Key), []byte(cfg.Seal.Salt)), nil
}
