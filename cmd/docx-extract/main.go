package main

import (
    "fmt"
    "os"

    "github.com/spf13/cobra"
)

func main() {
    root := &cobra.Command{
        Use:           "docx-extract",
        Short:         "Extract text and images from Word (.docx) documents",
        SilenceUsage:  true,
        SilenceErrors: true,
    }
    root.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to a YAML config file")
    root.PersistentFlags().StringVar(&globals.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")
    root.PersistentFlags().StringVar(&globals.engine, "engine", "", "override the extraction engine (godocx|xml)")

    root.AddCommand(extractCmd(), serveCmd(), schemaCmd())

    if err := root.Execute(); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
}
