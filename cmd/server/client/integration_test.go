//go:build integration

package client

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	toolkitv1alpha1 "github.com/KirkDiggler/dnd-ai-toolkit/internal/handlers/toolkit/v1alpha1"
)

func TestWorldLifecycleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	grpcServerAddress := os.Getenv("GRPC_SERVER_ADDRESS")
	if grpcServerAddress == "" {
		grpcServerAddress = "localhost:50051"
	}
	conn, err := grpc.NewClient(grpcServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Logf("Failed to close connection: %v", err)
		}
	}()

	client := toolkitv1alpha1.NewToolkitServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		"world": map[string]any{
			"name": map[string]any{"en": "Integration World"},
			"lore": map[string]any{"en": "A world made by a test", "cs": "Svět vytvořený testem"},
		},
	})
	require.NoError(t, err)
	created, err := client.CreateWorld(ctx, req)
	require.NoError(t, err)
	worldID := created.Fields["world"].GetStructValue().Fields["id"].GetStringValue()
	require.NotEmpty(t, worldID)

	req, err = structpb.NewStruct(map[string]any{"world_id": worldID, "language": "cs"})
	require.NoError(t, err)
	assembled, err := client.AssembleContext(ctx, req)
	require.NoError(t, err)
	lore := assembled.Fields["context"].GetStructValue().Fields["world_lore"].GetStringValue()
	assert.Equal(t, "Svět vytvořený testem", lore)

	req, err = structpb.NewStruct(map[string]any{
		"world": map[string]any{
			"id":   worldID,
			"lore": map[string]any{"EN": "A world edited by a test"},
		},
	})
	require.NoError(t, err)
	updated, err := client.UpdateWorld(ctx, req)
	require.NoError(t, err)
	updatedLore := updated.Fields["world"].GetStructValue().Fields["lore"].GetStructValue()
	assert.Equal(t, "A world edited by a test", updatedLore.Fields["en"].GetStringValue())
	assert.Equal(t, "Svět vytvořený testem", updatedLore.Fields["cs"].GetStringValue())

	req, err = structpb.NewStruct(map[string]any{"method": "3d6"})
	require.NoError(t, err)
	rolled, err := client.RollAbilityScores(ctx, req)
	require.NoError(t, err)
	assert.Len(t, rolled.Fields["rolls"].GetListValue().GetValues(), 6)

	req, err = structpb.NewStruct(map[string]any{"id": worldID})
	require.NoError(t, err)
	_, err = client.DeleteWorld(ctx, req)
	require.NoError(t, err)

	_, err = client.GetWorld(ctx, req)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
