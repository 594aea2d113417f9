/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main is the OpenID4VP relying-party REST API.
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/eudi-wallet/openid4vp-rp/cmd/rp-rest/startcmd"
)

var logger = log.New("rp-rest")

func main() {
	rootCmd := &cobra.Command{
		Use: "rp-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(&startcmd.HTTPServer{}))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run rp-rest", log.WithError(err))
	}
}
