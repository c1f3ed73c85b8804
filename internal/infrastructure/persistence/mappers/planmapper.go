package mappers

import (
	"encoding/json"
	"fmt"

	"gymdesk/internal/domain/plan"
	"gymdesk/internal/infrastructure/persistence/models"
)

// PlanMapper handles the conversion between domain entities and persistence models
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
	ToModel(entity *plan.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*plan.Plan, error)
}

type planMapper struct{}

// NewPlanMapper creates a new plan mapper
func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	var features []string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan features: %w", err)
		}
	}

	return plan.ReconstructPlan(
		model.ID,
		model.SID,
		model.Name,
		model.Description,
		model.PriceCents,
		model.DurationMonths,
		features,
		model.Status,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *planMapper) ToModel(entity *plan.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	features, err := json.Marshal(entity.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan features: %w", err)
	}

	return &models.PlanModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		Name:           entity.Name(),
		Description:    entity.Description(),
		PriceCents:     entity.PriceCents(),
		DurationMonths: entity.DurationMonths(),
		Features:       features,
		Status:         string(entity.Status()),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *planMapper) ToEntities(planModels []*models.PlanModel) ([]*plan.Plan, error) {
	entities := make([]*plan.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
