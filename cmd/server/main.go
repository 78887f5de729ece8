// Package main is the entry point for the toolkit server and CLI
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-ai-toolkit/cmd/server/client"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "dnd-ai-toolkit",
	Short: "D&D AI Toolkit",
	Long: `D&D AI Toolkit helps a Dungeon Master keep worlds, campaigns and characters
in several languages and generate NPCs, portraits and translations with AI models.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(npcCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}

	level, err := config.ParseLogLevel(env.LogLevel)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(env.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	return nil
}
