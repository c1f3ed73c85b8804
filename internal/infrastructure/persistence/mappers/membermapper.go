package mappers

import (
	"gymdesk/internal/domain/member"
	"gymdesk/internal/infrastructure/persistence/models"
)

// MemberMapper handles the conversion between domain entities and persistence models
type MemberMapper interface {
	ToEntity(model *models.MemberModel) (*member.Member, error)
	ToModel(entity *member.Member) *models.MemberModel
	ToEntities(models []*models.MemberModel) ([]*member.Member, error)
}

type memberMapper struct{}

// NewMemberMapper creates a new member mapper
func NewMemberMapper() MemberMapper {
	return &memberMapper{}
}

func (m *memberMapper) ToEntity(model *models.MemberModel) (*member.Member, error) {
	if model == nil {
		return nil, nil
	}

	return member.ReconstructMember(
		model.ID,
		model.SID,
		model.FirstName,
		model.LastName,
		model.Email,
		model.Phone,
		model.Address,
		model.EmergencyContact,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *memberMapper) ToModel(entity *member.Member) *models.MemberModel {
	if entity == nil {
		return nil
	}

	return &models.MemberModel{
		ID:               entity.ID(),
		SID:              entity.SID(),
		FirstName:        entity.FirstName(),
		LastName:         entity.LastName(),
		Email:            entity.Email(),
		Phone:            entity.Phone(),
		Address:          entity.Address(),
		EmergencyContact: entity.EmergencyContact(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *memberMapper) ToEntities(memberModels []*models.MemberModel) ([]*member.Member, error) {
	entities := make([]*member.Member, 0, len(memberModels))
	for _, model := range memberModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
