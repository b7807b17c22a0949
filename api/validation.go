package api

import (
	"context"
	"net/http"
)

// ValidationService covers the idea-validation board.
type ValidationService struct {
	core *core
}

// Ideas lists all ideas, most-voted first.
func (s *ValidationService) Ideas(ctx context.Context) ([]Idea, error) {
	var out []Idea
	if err := s.core.do(ctx, http.MethodGet, "/validation/ideas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIdea posts a new idea to the board.
func (s *ValidationService) CreateIdea(ctx context.Context, in IdeaInput) (*Idea, error) {
	var out Idea
	if err := s.core.do(ctx, http.MethodPost, "/validation/ideas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Vote toggles the caller's vote on an idea; the result reports whether
// it was added or removed.
func (s *ValidationService) Vote(ctx context.Context, ideaID string) (*VoteResult, error) {
	var out VoteResult
	if err := s.core.do(ctx, http.MethodPost, "/validation/ideas/"+ideaID+"/vote", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddFeedback attaches a comment to an idea.
func (s *ValidationService) AddFeedback(ctx context.Context, ideaID string, in FeedbackInput) (*Feedback, error) {
	var out Feedback
	if err := s.core.do(ctx, http.MethodPost, "/validation/ideas/"+ideaID+"/feedback", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
