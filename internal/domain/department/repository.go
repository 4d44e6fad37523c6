package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Rename(ctx context.Context, id, name string) (Department, error)
	Count(ctx context.Context) (int64, error)
}

type DepartmentService interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	List(ctx context.Context) ([]DepartmentResponse, error)
	Rename(ctx context.Context, req RenameDepartmentRequest) (DepartmentResponse, error)
}
