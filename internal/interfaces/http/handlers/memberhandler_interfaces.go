package handlers

import (
	"context"

	memberdto "gymdesk/internal/application/member/dto"
	memberUsecases "gymdesk/internal/application/member/usecases"
)

// Use case interfaces for MemberHandler

type enrollMemberUseCase interface {
	Execute(ctx context.Context, cmd memberUsecases.EnrollMemberCommand) (*memberdto.EnrollmentDTO, error)
}

type getMemberUseCase interface {
	ExecuteBySID(ctx context.Context, sid string) (*memberdto.MemberDTO, error)
}

type listMembersUseCase interface {
	Execute(ctx context.Context, query memberUsecases.ListMembersQuery) (*memberUsecases.ListMembersResult, error)
}

type updateMemberUseCase interface {
	Execute(ctx context.Context, cmd memberUsecases.UpdateMemberCommand) (*memberdto.MemberDTO, error)
}

type deleteMemberUseCase interface {
	Execute(ctx context.Context, sid string) error
}

type renewMembershipUseCase interface {
	Execute(ctx context.Context, cmd memberUsecases.RenewMembershipCommand) (*memberdto.AssignmentDTO, error)
}
