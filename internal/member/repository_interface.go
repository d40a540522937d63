package member

import "context"

type Repository interface {
	List(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	Create(ctx context.Context, req CreateMemberRequest) (*Member, error)
	Update(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, id int) error
	ListUnpaid(ctx context.Context) ([]Member, error)
}
