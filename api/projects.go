package api

import (
	"context"
	"net/http"
)

// ProjectsService covers projects and their tasks.
type ProjectsService struct {
	core *core
}

// List lists the workspace's projects.
func (s *ProjectsService) List(ctx context.Context) ([]Project, error) {
	var out []Project
	if err := s.core.do(ctx, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create creates a project.
func (s *ProjectsService) Create(ctx context.Context, in ProjectInput) (*Project, error) {
	var out Project
	if err := s.core.do(ctx, http.MethodPost, "/projects", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update. Moving a project to "completed" makes
// the server issue a paid invoice for the project's value.
func (s *ProjectsService) Update(ctx context.Context, id string, in ProjectUpdate) (*Project, error) {
	var out Project
	if err := s.core.do(ctx, http.MethodPut, "/projects/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tasks lists the workspace's tasks across all projects.
func (s *ProjectsService) Tasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := s.core.do(ctx, http.MethodGet, "/projects/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask creates a task assigned to the caller.
func (s *ProjectsService) CreateTask(ctx context.Context, in TaskInput) (*Task, error) {
	var out Task
	if err := s.core.do(ctx, http.MethodPost, "/projects/tasks", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask applies a partial task update.
func (s *ProjectsService) UpdateTask(ctx context.Context, id string, in TaskUpdate) (*Task, error) {
	var out Task
	if err := s.core.do(ctx, http.MethodPut, "/projects/tasks/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task. Management roles only.
func (s *ProjectsService) DeleteTask(ctx context.Context, id string) error {
	return s.core.do(ctx, http.MethodDelete, "/projects/tasks/"+id, nil, nil)
}
