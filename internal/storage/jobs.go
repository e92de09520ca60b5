package storage

import (
	"context"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
)

func copyJob(j domain.Job) *domain.Job {
	if j.Coordinates != nil {
		c := *j.Coordinates
		j.Coordinates = &c
	}
	return &j
}

func jobCreatedAt(j domain.Job) time.Time { return j.CreatedAt }
func jobID(j domain.Job) int              { return j.ID }

// ListJobs returns active jobs matching f, newest first.
func (s *Store) ListJobs(_ context.Context, f domain.ListFilter) ([]domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := collect(s.jobs, func(j domain.Job) bool {
		return j.Status == domain.JobStatusActive &&
			matches(f, j.Category, j.Location, j.Title, j.Description)
	})
	newestFirst(jobs, jobCreatedAt, jobID)
	for i := range jobs {
		jobs[i] = *copyJob(jobs[i])
	}
	return jobs, nil
}

func (s *Store) GetJob(_ context.Context, id int) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyJob(j), nil
}

func (s *Store) GetJobsByUser(_ context.Context, userID int) ([]domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := collect(s.jobs, func(j domain.Job) bool { return j.UserID == userID })
	byID(jobs, jobID)
	for i := range jobs {
		jobs[i] = *copyJob(jobs[i])
	}
	return jobs, nil
}

func (s *Store) CreateJob(_ context.Context, job *domain.Job) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j := *copyJob(*job)
	j.ID = s.seq.next()
	j.Status = domain.JobStatusActive
	if j.Urgency == "" {
		j.Urgency = domain.UrgencyNormal
	}
	j.Applicants = 0
	j.CreatedAt = s.now()
	s.jobs[j.ID] = j

	return copyJob(j), nil
}

func (s *Store) UpdateJob(_ context.Context, id int, upd domain.JobUpdate) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	set(&j.Title, upd.Title)
	set(&j.Description, upd.Description)
	set(&j.Category, upd.Category)
	set(&j.Budget, upd.Budget)
	set(&j.Location, upd.Location)
	set(&j.Status, upd.Status)
	set(&j.Urgency, upd.Urgency)
	if upd.Coordinates != nil {
		c := *upd.Coordinates
		j.Coordinates = &c
	}
	s.jobs[id] = j

	return copyJob(j), nil
}

// DeleteJob removes the job only. Its applications and reviews stay
// addressable by id.
func (s *Store) DeleteJob(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}

// CompleteJob marks an active job completed and credits one completed job to
// every user whose application to it was accepted. Completing a completed
// job changes nothing; any other status is refused with ErrStatusChanged.
func (s *Store) CompleteJob(_ context.Context, id int) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	if j.Status == domain.JobStatusCompleted {
		return copyJob(j), nil
	}
	if j.Status != domain.JobStatusActive {
		return nil, ErrStatusChanged
	}
	j.Status = domain.JobStatusCompleted
	s.jobs[id] = j

	for _, a := range s.applications {
		if a.JobID != id || a.Status != domain.ApplicationStatusAccepted {
			continue
		}
		if u, ok := s.users[a.UserID]; ok {
			u.CompletedJobs++
			s.users[u.ID] = u
		}
	}
	return copyJob(j), nil
}

func applicationID(a domain.JobApplication) int { return a.ID }

func (s *Store) GetJobApplication(_ context.Context, id int) (*domain.JobApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *Store) GetJobApplications(_ context.Context, jobID int) ([]domain.JobApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := collect(s.applications, func(a domain.JobApplication) bool { return a.JobID == jobID })
	byID(apps, applicationID)
	return apps, nil
}

func (s *Store) GetJobApplicationsByUser(_ context.Context, userID int) ([]domain.JobApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := collect(s.applications, func(a domain.JobApplication) bool { return a.UserID == userID })
	byID(apps, applicationID)
	return apps, nil
}

// CreateJobApplication stores the application and bumps the job's applicant
// count in the same critical section. A missing job is tolerated.
func (s *Store) CreateJobApplication(_ context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := *app
	a.ID = s.seq.next()
	a.Status = domain.ApplicationStatusPending
	a.CreatedAt = s.now()
	s.applications[a.ID] = a

	if j, ok := s.jobs[a.JobID]; ok {
		j.Applicants++
		s.jobs[j.ID] = j
	}
	return &a, nil
}

func (s *Store) UpdateJobApplication(_ context.Context, id int, upd domain.ApplicationUpdate) (*domain.JobApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, ErrNotFound
	}
	set(&a.Message, upd.Message)
	set(&a.Status, upd.Status)
	s.applications[id] = a

	return &a, nil
}
