package files

import (
	"context"
	"fmt"
	"log/slog"

	"teamcamp/internal/authz"
	"teamcamp/internal/features/activity"
	"teamcamp/internal/objectstore"

	"github.com/google/uuid"
)

type FileService struct {
	fileRepository  *FileRepository
	objects         objectstore.Remover
	resolver        *authz.Resolver
	activityService *activity.ActivityService
	logger          *slog.Logger
}

func NewFileService(
	fileRepository *FileRepository,
	objects objectstore.Remover,
	resolver *authz.Resolver,
	activityService *activity.ActivityService,
	logger *slog.Logger,
) *FileService {
	return &FileService{
		fileRepository:  fileRepository,
		objects:         objects,
		resolver:        resolver,
		activityService: activityService,
		logger:          logger,
	}
}

func (s *FileService) GetProjectFiles(
	ctx context.Context,
	projectID, userID uuid.UUID,
) (*ListFilesResponse, error) {
	if err := s.resolver.Authorize(ctx, projectID, userID, authz.ActionViewFiles); err != nil {
		return nil, err
	}

	records, err := s.fileRepository.GetByProject(ctx, projectID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	return &ListFilesResponse{Files: records}, nil
}

// RegisterFile records metadata for an object already uploaded to the store.
func (s *FileService) RegisterFile(
	ctx context.Context,
	projectID, userID uuid.UUID,
	request *RegisterFileRequest,
) (*FileRecord, error) {
	if err := s.resolver.Authorize(ctx, projectID, userID, authz.ActionUploadFile); err != nil {
		return nil, err
	}

	record := &FileRecord{
		ProjectID:  projectID,
		FileName:   request.FileName,
		FilePath:   request.FilePath,
		FileSize:   request.FileSize,
		FileType:   request.FileType,
		UploadedBy: userID,
	}

	if err := s.fileRepository.Create(ctx, record); err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	s.activityService.Record(ctx, fmt.Sprintf("Uploaded file %q", record.FileName), &userID, &projectID)

	return record, nil
}

// DeleteFile removes the metadata row, then the stored object. A failed
// object removal is logged but does not fail the call: the record is already
// gone and the store can be swept later.
func (s *FileService) DeleteFile(ctx context.Context, fileID, userID uuid.UUID) error {
	record, err := s.fileRepository.GetByID(ctx, fileID)
	if err != nil {
		return &authz.InfrastructureError{Err: err}
	}
	if record == nil {
		return fmt.Errorf("file: %w", authz.ErrNotFound)
	}

	err = s.resolver.AuthorizeFileDelete(ctx, record.ProjectID, userID, record.UploadedBy)
	if err != nil {
		return err
	}

	if err := s.fileRepository.Delete(ctx, fileID); err != nil {
		return &authz.InfrastructureError{Err: err}
	}

	if err := s.objects.Remove(ctx, record.FilePath); err != nil {
		s.logger.Error("failed to remove stored object",
			"path", record.FilePath,
			"fileId", fileID,
			"error", err)
	}

	s.activityService.Record(ctx, fmt.Sprintf("Deleted file %q", record.FileName), &userID, &record.ProjectID)

	return nil
}
