package mock

import (
	"context"

	"github.com/fwojciec/sitelens"
)

var _ sitelens.ProfileService = (*ProfileService)(nil)

// ProfileService is a mock implementation of sitelens.ProfileService.
type ProfileService struct {
	CreateProfileFn   func(ctx context.Context, rec *sitelens.ProfileRecord) error
	FindProfileByIDFn func(ctx context.Context, id string) (*sitelens.ProfileRecord, error)
	FindProfilesFn    func(ctx context.Context, filter sitelens.ProfileFilter) ([]*sitelens.ProfileRecord, error)
}

func (s *ProfileService) CreateProfile(ctx context.Context, rec *sitelens.ProfileRecord) error {
	return s.CreateProfileFn(ctx, rec)
}

func (s *ProfileService) FindProfileByID(ctx context.Context, id string) (*sitelens.ProfileRecord, error) {
	return s.FindProfileByIDFn(ctx, id)
}

func (s *ProfileService) FindProfiles(ctx context.Context, filter sitelens.ProfileFilter) ([]*sitelens.ProfileRecord, error) {
	return s.FindProfilesFn(ctx, filter)
}

var _ sitelens.PromptLogService = (*PromptLogService)(nil)

// PromptLogService is a mock implementation of sitelens.PromptLogService.
type PromptLogService struct {
	CreatePromptLogFn func(ctx context.Context, log *sitelens.PromptLog) error
	FindPromptLogsFn  func(ctx context.Context, filter sitelens.PromptLogFilter) ([]*sitelens.PromptLog, error)
}

func (s *PromptLogService) CreatePromptLog(ctx context.Context, log *sitelens.PromptLog) error {
	return s.CreatePromptLogFn(ctx, log)
}

func (s *PromptLogService) FindPromptLogs(ctx context.Context, filter sitelens.PromptLogFilter) ([]*sitelens.PromptLog, error) {
	return s.FindPromptLogsFn(ctx, filter)
}
