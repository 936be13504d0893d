package main

import (
    "encoding/json"
    "fmt"

    "github.com/spf13/cobra"

    "github.com/thywilljoshua/docx-extract/internal/plugin"
    "github.com/thywilljoshua/docx-extract/internal/tool"
)

func schemaCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "schema",
        Short: "Print the tool identity and parameter schema as JSON",
        Args:  cobra.NoArgs,
        RunE: func(cmd *cobra.Command, args []string) error {
            doc := struct {
                Identity   plugin.Identity        `json:"identity"`
                Parameters []plugin.ToolParameter `json:"parameters"`
            }{
                Identity:   tool.ToolIdentity(),
                Parameters: tool.RuntimeParameters(),
            }
            b, err := json.MarshalIndent(doc, "", "  ")
            if err != nil {
                return err
            }
            fmt.Fprintln(cmd.OutOrStdout(), string(b))
            return nil
        },
    }
}
