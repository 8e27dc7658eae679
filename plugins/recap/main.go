package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-plugin"

	reportrpc "pokerlog/internal/modules/report/adapter/out/rpc"
)

type snapshot struct {
	Username string `json:"username"`
	Sessions []struct {
		GameType  string  `json:"game_type"`
		Date      string  `json:"date"`
		NetProfit float64 `json:"net_profit"`
	} `json:"sessions"`
}

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *reportrpc.Empty) (*reportrpc.Metadata, error) {
	return &reportrpc.Metadata{
		Name:         "recap",
		Version:      "1.0.0",
		Capabilities: []string{"report", "analyze"},
	}, nil
}

func (s *server) ListCommands(_ context.Context, _ *reportrpc.Empty) (*reportrpc.ListCommandsResponse, error) {
	return &reportrpc.ListCommandsResponse{Commands: []reportrpc.CommandDescriptor{
		{ID: "profit-recap", Title: "Profit Recap", Description: "Net result per game type over the whole log", Kind: "report", TimeoutMS: 2000},
		{ID: "streaks", Title: "Streaks", Description: "Longest winning and losing run by date order", Kind: "analyze", TimeoutMS: 2500},
	}}, nil
}

func (s *server) Run(_ context.Context, in *reportrpc.RunRequest) (*reportrpc.RunResponse, error) {
	var snap snapshot
	if strings.TrimSpace(in.Context.SnapshotJSON) != "" {
		if err := json.Unmarshal([]byte(in.Context.SnapshotJSON), &snap); err != nil {
			return &reportrpc.RunResponse{Stderr: "bad snapshot: " + err.Error(), ExitCode: 1}, nil
		}
	}

	switch in.CommandID {
	case "profit-recap":
		var cash, tournament float64
		for _, session := range snap.Sessions {
			switch session.GameType {
			case "cash":
				cash += session.NetProfit
			case "tournament":
				tournament += session.NetProfit
			}
		}
		payload := map[string]any{
			"username":   in.Context.Username,
			"sessions":   len(snap.Sessions),
			"cash":       cash,
			"tournament": tournament,
			"combined":   cash + tournament,
		}
		raw, _ := json.Marshal(payload)
		stdout := fmt.Sprintf("%s: %d sessions, combined %+.2f (cash %+.2f, tournament %+.2f)",
			in.Context.Username, len(snap.Sessions), cash+tournament, cash, tournament)
		return &reportrpc.RunResponse{Stdout: stdout, OutputJSON: string(raw), ExitCode: 0}, nil
	case "streaks":
		var current, bestWin, bestLoss int
		var lastPositive bool
		for i, session := range snap.Sessions {
			positive := session.NetProfit > 0
			if i == 0 || positive != lastPositive {
				current = 0
			}
			current++
			lastPositive = positive
			if positive && current > bestWin {
				bestWin = current
			}
			if !positive && current > bestLoss {
				bestLoss = current
			}
		}
		raw, _ := json.Marshal(map[string]any{"longest_win_streak": bestWin, "longest_loss_streak": bestLoss})
		return &reportrpc.RunResponse{Stdout: "streaks computed", OutputJSON: string(raw), ExitCode: 0}, nil
	default:
		return nil, fmt.Errorf("unknown command: %s", in.CommandID)
	}
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: reportrpc.HandshakeConfig,
		Plugins:         reportrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
