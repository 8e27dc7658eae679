package in

import (
	"context"

	"pokerlog/internal/modules/report/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PluginInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	ListCommands(ctx context.Context, pluginName string) ([]dto.CommandInfo, error)
	// Run dispatches a report command against the user's session snapshot.
	Run(ctx context.Context, input dto.RunInput) (dto.RunOutput, error)
	// Analyze dispatches an analyze command, same transport but gated on
	// the analyze capability.
	Analyze(ctx context.Context, input dto.RunInput) (dto.RunOutput, error)
}
