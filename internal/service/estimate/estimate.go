package estimate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"feemo-backend/internal/service/calc"
	"feemo-backend/internal/storage"
)

type EstimateStorage interface {
	GetTemplateByID(ctx context.Context, id string) (*storage.CalculationTemplate, error)
	GetTeam(ctx context.Context) ([]storage.TeamMember, error)
	GetMultipliers(ctx context.Context) (storage.GlobalMultipliers, error)
	GetStageDefinitions(ctx context.Context) ([]storage.Stage, error)
}

type EstimateService struct {
	storage EstimateStorage
}

func NewEstimateService(storage EstimateStorage) *EstimateService {
	return &EstimateService{storage: storage}
}

type EstimateRequest struct {
	Inputs storage.ProjectInputs `json:"inputs"`
	// Этапы и команда из текущей сессии фронта; пустые — берём конфигурацию
	Stages []storage.Stage      `json:"stages,omitempty"`
	Team   []storage.TeamMember `json:"team,omitempty"`
}

type EstimateResponse struct {
	TotalHours float64                   `json:"totalHours"`
	Stages     []storage.Stage           `json:"stages"`
	Result     storage.CalculationResult `json:"result"`
}

type CostEditRequest struct {
	Inputs          storage.ProjectInputs `json:"inputs"`
	Stages          []storage.Stage       `json:"stages"`
	Team            []storage.TeamMember  `json:"team,omitempty"`
	EditedTotalCost float64               `json:"editedTotalCost"`
}

type CostEditResponse struct {
	Inputs storage.ProjectInputs     `json:"inputs"`
	Stages []storage.Stage           `json:"stages"`
	Result storage.CalculationResult `json:"result"`
}

// Estimate — полный конвейер: объём или гонорар → часы → аллокации → итог.
// Независимые куски конфигурации тянем параллельно.
func (s *EstimateService) Estimate(ctx context.Context, req EstimateRequest) (*EstimateResponse, error) {
	const op = "service.estimate.Estimate"

	var (
		template    *storage.CalculationTemplate
		team        []storage.TeamMember
		multipliers storage.GlobalMultipliers
		stageDefs   []storage.Stage
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		template, err = s.storage.GetTemplateByID(gCtx, req.Inputs.TemplateID)
		if err != nil {
			return fmt.Errorf("template: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		multipliers, err = s.storage.GetMultipliers(gCtx)
		if err != nil {
			return fmt.Errorf("multipliers: %w", err)
		}
		return nil
	})
	if len(req.Team) == 0 {
		g.Go(func() error {
			var err error
			team, err = s.storage.GetTeam(gCtx)
			if err != nil {
				return fmt.Errorf("team: %w", err)
			}
			return nil
		})
	}
	if len(req.Stages) == 0 {
		g.Go(func() error {
			var err error
			stageDefs, err = s.storage.GetStageDefinitions(gCtx)
			if err != nil {
				return fmt.Errorf("stages: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(req.Team) > 0 {
		team = req.Team
	}

	stages := req.Stages
	if len(stages) == 0 {
		stages = applyTemplateDefaults(stageDefs, template)
	}

	// Инвариант цен оферт мог разъехаться на стороне клиента
	for i := range stages {
		calc.SyncQuotePrice(&stages[i])
	}

	totalHours := calc.ResolveTotalHours(template, team, multipliers, stages, req.Inputs)
	allocated := calc.AllocateStages(totalHours, template, team, stages)
	result := calc.Aggregate(allocated, team, req.Inputs.Area)

	return &EstimateResponse{
		TotalHours: totalHours,
		Stages:     allocated,
		Result:     result,
	}, nil
}

// CostEdit — обратный ход после ручной правки итога на подведении итогов
func (s *EstimateService) CostEdit(ctx context.Context, req CostEditRequest) (*CostEditResponse, error) {
	const op = "service.estimate.CostEdit"

	var (
		template *storage.CalculationTemplate
		team     []storage.TeamMember
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		template, err = s.storage.GetTemplateByID(gCtx, req.Inputs.TemplateID)
		if err != nil {
			return fmt.Errorf("template: %w", err)
		}
		return nil
	})
	if len(req.Team) == 0 {
		g.Go(func() error {
			var err error
			team, err = s.storage.GetTeam(gCtx)
			if err != nil {
				return fmt.Errorf("team: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(req.Team) > 0 {
		team = req.Team
	}

	inputs, stages := calc.ApplyCostEdit(template, team, req.Stages, req.Inputs, req.EditedTotalCost)
	result := calc.Aggregate(stages, team, inputs.Area)

	return &CostEditResponse{
		Inputs: inputs,
		Stages: stages,
		Result: result,
	}, nil
}

// Свежая сессия: этапы из конфигурации плюс дефолты шаблона —
// какие этапы включены и какие фикс-цены стоят на внешних
func applyTemplateDefaults(defs []storage.Stage, template *storage.CalculationTemplate) []storage.Stage {
	stages := make([]storage.Stage, len(defs))
	copy(stages, defs)

	if template == nil || template.DefaultEnabledStages == nil {
		return stages
	}

	enabled := make(map[string]bool, len(template.DefaultEnabledStages))
	for _, id := range template.DefaultEnabledStages {
		enabled[id] = true
	}

	for i := range stages {
		stages[i].IsEnabled = enabled[stages[i].ID]
		if stages[i].Type == storage.StageExternalFixed {
			stages[i].FixedPrice = template.DefaultFixedCosts[stages[i].ID]
		}
	}

	return stages
}
