package api

import (
	"context"
	"net/http"

	oneclient "github.com/enterpriseone/oneclient"
)

// UsersService covers workspace member management. Every method is
// role-gated server-side; insufficient roles return 403.
type UsersService struct {
	core *core
}

// List lists the workspace's members. Platform operators on the home
// workspace see all tenants.
func (s *UsersService) List(ctx context.Context) ([]oneclient.Profile, error) {
	var out []oneclient.Profile
	if err := s.core.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create invites a teammate. The server emails the credentials and
// forces biometric setup on the new account's first login.
func (s *UsersService) Create(ctx context.Context, in CreateUserInput) (*CreateUserResult, error) {
	var out CreateUserResult
	if err := s.core.do(ctx, http.MethodPost, "/users/create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a member of the caller's workspace.
func (s *UsersService) Delete(ctx context.Context, id string) error {
	return s.core.do(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}

// UpdateRole changes a member's role. Unknown roles return 400.
func (s *UsersService) UpdateRole(ctx context.Context, id string, role oneclient.Role) error {
	in := struct {
		Role oneclient.Role `json:"role"`
	}{Role: role}

	return s.core.do(ctx, http.MethodPut, "/users/"+id+"/role", in, nil)
}
