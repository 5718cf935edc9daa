// Package client provides commands that call a running ddtools server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1alpha1 "github.com/Pallarran/Ultimate-D-D-Tools/internal/handlers/api/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the ddtools API",
	Long:  `Client commands make real gRPC requests against a running ddtools server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print the raw response as JSON")

	// Combat lab commands
	ClientCmd.AddCommand(analyzeCmd)
	ClientCmd.AddCommand(tradeoffCmd)
	ClientCmd.AddCommand(hitChanceCmd)
	ClientCmd.AddCommand(pillarsCmd)

	// Build library commands
	ClientCmd.AddCommand(createBuildCmd)
	ClientCmd.AddCommand(listBuildsCmd)
	ClientCmd.AddCommand(importWeaponCmd)

	// Dice commands
	ClientCmd.AddCommand(rollDiceCmd)
	ClientCmd.AddCommand(getRollSessionCmd)
	ClientCmd.AddCommand(clearRollSessionCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// dial opens a connection and builds a client with newClient
func dial[C any](newClient func(grpc.ClientConnInterface) C) (C, func(), error) {
	conn, err := createConnection()
	if err != nil {
		var zero C
		return zero, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return newClient(conn), cleanup, nil
}

func createCombatLabClient() (v1alpha1.CombatLabServiceClient, func(), error) {
	return dial(v1alpha1.NewCombatLabServiceClient)
}

func createBuildClient() (v1alpha1.BuildServiceClient, func(), error) {
	return dial(v1alpha1.NewBuildServiceClient)
}

func createDiceClient() (v1alpha1.DiceServiceClient, func(), error) {
	return dial(v1alpha1.NewDiceServiceClient)
}
