package main

import (
    "context"
    "errors"
    "os"
    "os/signal"
    "syscall"

    "github.com/spf13/cobra"

    "github.com/thywilljoshua/docx-extract/internal/plugin"
)

func serveCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "serve",
        Short: "Serve tool invocations as newline-delimited JSON on stdin/stdout",
        Args:  cobra.NoArgs,
        RunE: func(cmd *cobra.Command, args []string) error {
            ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
            defer stop()

            t, log, err := setup(ctx)
            if err != nil {
                return err
            }
            log.Info().Msg("serving on stdio")
            err = plugin.NewServer(t, log).Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
            if errors.Is(err, context.Canceled) {
                return nil
            }
            return err
        },
    }
}
