// Package client provides commands that call a running toolkit server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	toolkitv1alpha1 "github.com/KirkDiggler/dnd-ai-toolkit/internal/handlers/toolkit/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running toolkit server",
	Long:  `Client commands make real gRPC requests against a toolkit server and print the JSON response.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Request timeout")

	// Records
	ClientCmd.AddCommand(listWorldsCmd)
	ClientCmd.AddCommand(createWorldCmd)
	ClientCmd.AddCommand(getWorldCmd)
	ClientCmd.AddCommand(updateWorldCmd)
	ClientCmd.AddCommand(deleteWorldCmd)
	ClientCmd.AddCommand(listCampaignsCmd)
	ClientCmd.AddCommand(createCampaignCmd)
	ClientCmd.AddCommand(getCampaignCmd)
	ClientCmd.AddCommand(updateCampaignCmd)
	ClientCmd.AddCommand(deleteCampaignCmd)
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(createPlayerCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(deleteCharacterCmd)
	ClientCmd.AddCommand(rollScoresCmd)

	// Generation
	ClientCmd.AddCommand(assembleContextCmd)
	ClientCmd.AddCommand(generateNPCCmd)
	ClientCmd.AddCommand(simulateCmd)
	ClientCmd.AddCommand(translateCmd)
	ClientCmd.AddCommand(listOptionsCmd)
}

// createToolkitClient creates a toolkit service client
func createToolkitClient() (toolkitv1alpha1.ToolkitServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return toolkitv1alpha1.NewToolkitServiceClient(conn), cleanup, nil
}

// call is a ToolkitServiceClient method expression
type call func(toolkitv1alpha1.ToolkitServiceClient, context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

// invoke sends fields to the server and prints the response
func invoke(name string, fields map[string]any, fn call) error {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	client, cleanup, err := createToolkitClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := fn(client, ctx, req)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", name, err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// withoutEmpty drops blank string values so the server sees them as absent
func withoutEmpty(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out[k] = v
	}
	return out
}
