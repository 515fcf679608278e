// Package main is the entry point for the Ordem rules gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ordem-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "ordem-api",
	Short: "Ordem Paranormal rules gRPC server",
	Long:  `Ordem API resolves Ordem Paranormal tests, conditions, sanity and rituals over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
