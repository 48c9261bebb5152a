package user

import "context"

type UserService interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetUser(ctx context.Context, id string) (*UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	UpdateUser(ctx context.Context, req *UpdateUserRequest) (*UserResponse, error)
	// DeactivateUser soft-deletes; the actor cannot deactivate themselves.
	DeactivateUser(ctx context.Context, actorID, id string) error
}
