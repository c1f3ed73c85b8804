package handlers

import (
	"context"

	plandto "gymdesk/internal/application/plan/dto"
	planUsecases "gymdesk/internal/application/plan/usecases"
)

// Use case interfaces for PlanHandler

type savePlanUseCase interface {
	Execute(ctx context.Context, cmd planUsecases.SavePlanCommand) (*plandto.PlanDTO, error)
}

type getPlanUseCase interface {
	ExecuteBySID(ctx context.Context, sid string) (*plandto.PlanDTO, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context, query planUsecases.ListPlansQuery) (*planUsecases.ListPlansResult, error)
}

type getActivePlansUseCase interface {
	Execute(ctx context.Context) ([]*plandto.PlanDTO, error)
}

type setPlanStatusUseCase interface {
	Execute(ctx context.Context, sid string, active bool) error
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, sid string) error
}
