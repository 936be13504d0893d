package main

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"

    "github.com/spf13/cobra"

    "github.com/thywilljoshua/docx-extract/internal/plugin"
    "github.com/thywilljoshua/docx-extract/internal/tool"
)

type extractResult struct {
    Messages int      `json:"messages"`
    Images   []string `json:"images"`
    OutDir   string   `json:"out_dir"`
}

func extractCmd() *cobra.Command {
    var out string

    cmd := &cobra.Command{
        Use:   "extract <docx>",
        Short: "Print the text of a .docx and write its images to a directory",
        Args:  cobra.ExactArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            docPath := args[0]
            if out == "" {
                out = "."
            }
            if err := os.MkdirAll(out, 0o755); err != nil {
                return err
            }

            blob, err := os.ReadFile(docPath)
            if err != nil {
                return err
            }

            t, _, err := setup(cmd.Context())
            if err != nil {
                return err
            }

            stream, err := t.Invoke(cmd.Context(), plugin.Parameters{
                tool.ParamWordContent: plugin.File{
                    Filename: filepath.Base(docPath),
                    MIMEType: tool.DocxMIMEType,
                    Blob:     blob,
                },
            })
            if err != nil {
                return err
            }
            defer stream.Close()

            res := extractResult{Images: []string{}, OutDir: out}
            for msg, err := range stream.All() {
                if err != nil {
                    return err
                }
                res.Messages++
                switch msg.Type {
                case plugin.MessageText:
                    fmt.Fprintln(cmd.OutOrStdout(), msg.Text)
                case plugin.MessageBlob:
                    name, _ := msg.Meta["file_name"].(string)
                    dst := filepath.Join(out, filepath.Base(name))
                    if err := os.WriteFile(dst, msg.Blob, 0o644); err != nil {
                        return err
                    }
                    res.Images = append(res.Images, dst)
                }
            }

            b, _ := json.MarshalIndent(res, "", "  ")
            fmt.Fprintln(cmd.ErrOrStderr(), string(b))
            return nil
        },
    }
    cmd.Flags().StringVarP(&out, "out", "o", "", "output directory for extracted images (default: current directory)")
    return cmd
}
