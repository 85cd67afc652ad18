package recruitapi

import (
	"context"
	"fmt"
	"io"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/apiclient"
)

// Students covers the student profile and resume upload endpoints.
type Students struct {
	c      *apiclient.Client
	prefix string
	files  string
}

func (s *Students) Me(ctx context.Context) (*domain.StudentProfile, error) {
	var out domain.StudentProfile
	if err := s.c.Get(ctx, s.prefix+"/me", &out); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &out, nil
}

func (s *Students) Update(ctx context.Context, profile domain.StudentProfile) (*domain.StudentProfile, error) {
	var out domain.StudentProfile
	if err := s.c.Put(ctx, s.prefix+"/update", profile, &out); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &out, nil
}

// UploadResume sends r as the multipart "file" part.
func (s *Students) UploadResume(ctx context.Context, filename string, r io.Reader) (*domain.ResumeUpload, error) {
	var out domain.ResumeUpload
	if err := s.c.Upload(ctx, s.files+"/upload/resume", "file", filename, r, &out); err != nil {
		return nil, fmt.Errorf("upload resume: %w", err)
	}
	return &out, nil
}
