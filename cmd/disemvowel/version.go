// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import "github.com/spf13/cobra"

// version is set at build time via ldflags.
var version = "dev"

// setVersion enables --version on cmd. There is no version subcommand:
// every positional argument is a path.
func setVersion(cmd *cobra.Command) {
	cmd.Version = version
	cmd.SetVersionTemplate("disemvowel {{.Version}}\n")
}
