package jobservice

//go:generate mockgen -source=jobservice.go -destination=jobservice_mock.go -package=jobservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"github.com/GlebRadaev/marketplace/pkg/money"
	"go.uber.org/zap"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrJobNotActive        = errors.New("job is not accepting applications")
	ErrOwnJob              = errors.New("cannot apply to your own job")
)

type Repo interface {
	ListJobs(ctx context.Context, f domain.ListFilter) ([]domain.Job, error)
	GetJob(ctx context.Context, id int) (*domain.Job, error)
	CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error)
	UpdateJob(ctx context.Context, id int, upd domain.JobUpdate) (*domain.Job, error)
	DeleteJob(ctx context.Context, id int) error
	CompleteJob(ctx context.Context, id int) (*domain.Job, error)
	GetJobApplication(ctx context.Context, id int) (*domain.JobApplication, error)
	GetJobApplications(ctx context.Context, jobID int) ([]domain.JobApplication, error)
	CreateJobApplication(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
	UpdateJobApplication(ctx context.Context, id int, upd domain.ApplicationUpdate) (*domain.JobApplication, error)
	CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) ListJobs(ctx context.Context, f domain.ListFilter) ([]domain.Job, error) {
	return s.repo.ListJobs(ctx, f)
}

func (s *Service) GetJob(ctx context.Context, id int) (*domain.Job, error) {
	job, err := s.repo.GetJob(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	return job, err
}

func (s *Service) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	budget, err := money.Normalize(job.Budget)
	if err != nil {
		return nil, err
	}
	job.Budget = budget

	created, err := s.repo.CreateJob(ctx, job)
	if err != nil {
		zap.L().Error("can't create job", zap.Error(err))
		return nil, err
	}
	zap.L().Info("job posted", zap.Int("id", created.ID), zap.Int("user_id", created.UserID))
	return created, nil
}

func (s *Service) UpdateJob(ctx context.Context, id int, upd domain.JobUpdate) (*domain.Job, error) {
	if upd.Budget != nil {
		budget, err := money.Normalize(*upd.Budget)
		if err != nil {
			return nil, err
		}
		upd.Budget = &budget
	}
	job, err := s.repo.UpdateJob(ctx, id, upd)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	return job, err
}

func (s *Service) DeleteJob(ctx context.Context, id int) error {
	if err := s.repo.DeleteJob(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	zap.L().Info("job deleted", zap.Int("id", id))
	return nil
}

// CompleteJob closes an active job and credits its accepted applicants.
// Cancelled jobs cannot be completed.
func (s *Service) CompleteJob(ctx context.Context, id int) (*domain.Job, error) {
	job, err := s.repo.CompleteJob(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, ErrJobNotFound
	case errors.Is(err, storage.ErrStatusChanged):
		return nil, ErrJobNotActive
	}
	if err != nil {
		return nil, err
	}
	zap.L().Info("job completed", zap.Int("id", id))
	return job, nil
}

func (s *Service) ListApplications(ctx context.Context, jobID int) ([]domain.JobApplication, error) {
	return s.repo.GetJobApplications(ctx, jobID)
}

// Apply records an application to an active job that the applicant does
// not own, and tells the job owner about it.
func (s *Service) Apply(ctx context.Context, jobID, userID int, message string) (*domain.JobApplication, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusActive {
		return nil, ErrJobNotActive
	}
	if job.UserID == userID {
		return nil, ErrOwnJob
	}

	app, err := s.repo.CreateJobApplication(ctx, &domain.JobApplication{
		JobID:   jobID,
		UserID:  userID,
		Message: message,
	})
	if err != nil {
		zap.L().Error("can't create job application", zap.Error(err))
		return nil, err
	}

	s.notify(ctx, job.UserID, "New Application", fmt.Sprintf("Someone applied to your job %q", job.Title))
	return app, nil
}

// UpdateApplication changes an application; a decision on it is reported to
// the applicant.
func (s *Service) UpdateApplication(ctx context.Context, id int, upd domain.ApplicationUpdate) (*domain.JobApplication, error) {
	app, err := s.repo.UpdateJobApplication(ctx, id, upd)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}

	if upd.Status != nil && *upd.Status != domain.ApplicationStatusPending {
		s.notify(ctx, app.UserID, "Application "+*upd.Status, fmt.Sprintf("Your application #%d was %s", app.ID, *upd.Status))
	}
	return app, nil
}

func (s *Service) notify(ctx context.Context, userID int, title, message string) {
	_, err := s.repo.CreateNotification(ctx, &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    domain.NotificationTypeJob,
	})
	if err != nil {
		zap.L().Error("can't create job notification", zap.Int("user_id", userID), zap.Error(err))
	}
}
