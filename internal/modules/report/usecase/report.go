package usecase

import (
	"context"

	"pokerlog/internal/modules/report/dto"
	reportin "pokerlog/internal/modules/report/port/in"
	"pokerlog/internal/modules/report/service"
	rosterin "pokerlog/internal/modules/roster/port/in"
)

// Interactor joins the plugin host with the roster: every run ships the
// user's exported snapshot so plugins stay read-only consumers.
type Interactor struct {
	svc    *service.ReportService
	roster rosterin.Usecase
}

func NewInteractor(svc *service.ReportService, roster rosterin.Usecase) reportin.Usecase {
	return &Interactor{svc: svc, roster: roster}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) ListCommands(ctx context.Context, pluginName string) ([]dto.CommandInfo, error) {
	return i.svc.ListCommands(ctx, pluginName)
}

func (i *Interactor) Run(ctx context.Context, input dto.RunInput) (dto.RunOutput, error) {
	snapshot, err := i.roster.Export(ctx, input.Username)
	if err != nil {
		return dto.RunOutput{}, err
	}
	return i.svc.Run(ctx, input, snapshot.Payload)
}

func (i *Interactor) Analyze(ctx context.Context, input dto.RunInput) (dto.RunOutput, error) {
	snapshot, err := i.roster.Export(ctx, input.Username)
	if err != nil {
		return dto.RunOutput{}, err
	}
	return i.svc.Analyze(ctx, input, snapshot.Payload)
}
