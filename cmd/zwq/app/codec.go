package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yyyoichi/zerowidth"
	"github.com/yyyoichi/zerowidth/internal/config"
)

func newEncodeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode --hidden MESSAGE [CARRIER]",
		Short: "Hide a message in a carrier text",
		Long: `Hide a message in a carrier text read from the argument or stdin.
Without --position the message goes before the first space of the carrier.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			carrier, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			hidden, _ := cmd.Flags().GetString("hidden")
			cfg, err := config.ReadConfigFromViper(v)
			if err != nil {
				return err
			}

			opts := []zerowidth.Option{zerowidth.WithLogger(*loggerFrom(cmd))}
			if cfg.Position >= 0 {
				opts = append(opts, zerowidth.WithPosition(cfg.Position))
			}
			c, err := zerowidth.New(opts...)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), c.Encode(carrier, hidden))
			return nil
		},
	}
	cmd.Flags().String("hidden", "", "Message to hide")
	cmd.Flags().Int("position", -1, "Rune index to insert at; negative picks the first space")
	_ = cmd.MarkFlagRequired("hidden")
	_ = config.BindFlag(v, "position", cmd.Flags(), "position")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [TEXT]",
		Short: "Reveal the message hidden in a text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			c, err := zerowidth.New(zerowidth.WithLogger(*loggerFrom(cmd)))
			if err != nil {
				return err
			}
			hidden, err := c.Decode(text)
			if err != nil {
				return fmt.Errorf("failed to decode: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hidden)
			return nil
		},
	}
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [TEXT]",
		Short: "Split a text into its visible text and invisible stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			visible, stream := zerowidth.ExtractStream(text)
			loggerFrom(cmd).Debug().
				Int("stream_runes", len([]rune(stream))).
				Msg("extracted invisible stream")
			fmt.Fprintln(cmd.OutOrStdout(), visible)
			for _, c := range stream {
				fmt.Fprintf(cmd.OutOrStdout(), "%U ", c)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
