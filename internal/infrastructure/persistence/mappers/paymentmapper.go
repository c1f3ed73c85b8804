package mappers

import (
	"fmt"

	"gymdesk/internal/domain/payment"
	"gymdesk/internal/infrastructure/persistence/models"
)

// PaymentMapper handles the conversion between domain entities and persistence models
type PaymentMapper interface {
	ToEntity(model *models.PaymentModel) (*payment.Payment, error)
	ToModel(entity *payment.Payment) *models.PaymentModel
	ToEntities(models []*models.PaymentModel) ([]*payment.Payment, error)
}

type paymentMapper struct{}

// NewPaymentMapper creates a new payment mapper
func NewPaymentMapper() PaymentMapper {
	return &paymentMapper{}
}

func (m *paymentMapper) ToEntity(model *models.PaymentModel) (*payment.Payment, error) {
	if model == nil {
		return nil, nil
	}

	method, err := payment.ParseMethod(model.Method)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payment method: %w", err)
	}
	status, err := payment.ParseStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payment status: %w", err)
	}

	return payment.ReconstructPayment(
		model.ID,
		model.SID,
		model.MemberID,
		model.AmountCents,
		method,
		status,
		model.PaidAt,
		model.CreatedAt,
	)
}

func (m *paymentMapper) ToModel(entity *payment.Payment) *models.PaymentModel {
	if entity == nil {
		return nil
	}

	return &models.PaymentModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		MemberID:    entity.MemberID(),
		AmountCents: entity.AmountCents(),
		Method:      string(entity.Method()),
		Status:      string(entity.Status()),
		PaidAt:      entity.PaidAt(),
		CreatedAt:   entity.CreatedAt(),
	}
}

func (m *paymentMapper) ToEntities(paymentModels []*models.PaymentModel) ([]*payment.Payment, error) {
	entities := make([]*payment.Payment, 0, len(paymentModels))
	for _, model := range paymentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
