package mappers

import (
	"gymdesk/internal/domain/member"
	"gymdesk/internal/infrastructure/persistence/models"
)

// AssignmentMapper handles the conversion between domain entities and persistence models
type AssignmentMapper interface {
	ToEntity(model *models.AssignmentModel) (*member.Assignment, error)
	ToModel(entity *member.Assignment) *models.AssignmentModel
	ToEntities(models []*models.AssignmentModel) ([]*member.Assignment, error)
}

type assignmentMapper struct{}

// NewAssignmentMapper creates a new assignment mapper
func NewAssignmentMapper() AssignmentMapper {
	return &assignmentMapper{}
}

func (m *assignmentMapper) ToEntity(model *models.AssignmentModel) (*member.Assignment, error) {
	if model == nil {
		return nil, nil
	}

	return member.ReconstructAssignment(
		model.ID,
		model.SID,
		model.MemberID,
		model.PlanID,
		model.StartDate,
		model.EndDate,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *assignmentMapper) ToModel(entity *member.Assignment) *models.AssignmentModel {
	if entity == nil {
		return nil
	}

	return &models.AssignmentModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		MemberID:  entity.MemberID(),
		PlanID:    entity.PlanID(),
		StartDate: entity.StartDate(),
		EndDate:   entity.EndDate(),
		Active:    entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *assignmentMapper) ToEntities(assignmentModels []*models.AssignmentModel) ([]*member.Assignment, error) {
	entities := make([]*member.Assignment, 0, len(assignmentModels))
	for _, model := range assignmentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
