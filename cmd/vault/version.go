package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/models"
)

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd.OutOrStdout(), c.buildInfo)
		},
	}
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Fprintf(w, "Build date: %s\n", orNA(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
