package jobs

//go:generate mockgen -source=jobs.go -destination=jobs_mock.go -package=jobs

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/dto"
	"github.com/GlebRadaev/marketplace/internal/service/jobservice"
	"github.com/GlebRadaev/marketplace/pkg/utils"
	"github.com/GlebRadaev/marketplace/pkg/validate"
)

type Service interface {
	ListJobs(ctx context.Context, f domain.ListFilter) ([]domain.Job, error)
	GetJob(ctx context.Context, id int) (*domain.Job, error)
	CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error)
	UpdateJob(ctx context.Context, id int, upd domain.JobUpdate) (*domain.Job, error)
	DeleteJob(ctx context.Context, id int) error
	CompleteJob(ctx context.Context, id int) (*domain.Job, error)
	ListApplications(ctx context.Context, jobID int) ([]domain.JobApplication, error)
	Apply(ctx context.Context, jobID, userID int, message string) (*domain.JobApplication, error)
	UpdateApplication(ctx context.Context, id int, upd domain.ApplicationUpdate) (*domain.JobApplication, error)
}

type JobHandler struct {
	jobService Service
}

func New(jobService Service) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// ListJobs godoc
//
//	@Summary		Browse active jobs
//	@Description	Newest first. category matches exactly; location and search match case-insensitive substrings.
//	@Tags			Jobs
//	@Produce		json
//	@Param			category	query	string	false	"Category"
//	@Param			location	query	string	false	"Location substring"
//	@Param			search		query	string	false	"Title or description substring"
//	@Success		200			{array}	domain.Job
//	@Router			/api/jobs [get]
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	jobs, err := h.jobService.ListJobs(r.Context(), domain.ListFilter{
		Category: q.Get("category"),
		Location: q.Get("location"),
		Search:   q.Get("search"),
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, jobs)
}

// GetJob godoc
//
//	@Summary	Get a job
//	@Tags		Jobs
//	@Produce	json
//	@Param		id	path		int	true	"Job ID"
//	@Success	200	{object}	domain.Job
//	@Failure	404	{object}	utils.Response	"Job not found"
//	@Router		/api/jobs/{id} [get]
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	job, err := h.jobService.GetJob(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, job)
}

// CreateJob godoc
//
//	@Summary	Post a job
//	@Tags		Jobs
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateJobRequestDTO	true	"Job"
//	@Success	201		{object}	domain.Job
//	@Failure	400		{object}	utils.Response	"Invalid job data"
//	@Router		/api/jobs [post]
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateJobRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job data")
		return
	}
	job, err := h.jobService.CreateJob(r.Context(), req.ToDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, job)
}

// UpdateJob godoc
//
//	@Summary	Update a job
//	@Tags		Jobs
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Job ID"
//	@Param		request	body		dto.UpdateJobRequestDTO	true	"Fields to change"
//	@Success	200		{object}	domain.Job
//	@Failure	400		{object}	utils.Response	"Invalid job data"
//	@Failure	404		{object}	utils.Response	"Job not found"
//	@Router		/api/jobs/{id} [patch]
func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	var req dto.UpdateJobRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job data")
		return
	}
	job, err := h.jobService.UpdateJob(r.Context(), id, req.ToDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, job)
}

// DeleteJob godoc
//
//	@Summary	Delete a job
//	@Tags		Jobs
//	@Produce	json
//	@Param		id	path		int	true	"Job ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Job not found"
//	@Router		/api/jobs/{id} [delete]
func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	if err := h.jobService.DeleteJob(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Job deleted successfully"})
}

// CompleteJob godoc
//
//	@Summary		Mark a job completed
//	@Description	Accepted applicants get the job counted towards their completed jobs.
//	@Tags			Jobs
//	@Produce		json
//	@Param			id	path		int	true	"Job ID"
//	@Success		200	{object}	domain.Job
//	@Failure		404	{object}	utils.Response	"Job not found"
//	@Failure		409	{object}	utils.Response	"Job is not active"
//	@Router			/api/jobs/{id}/complete [post]
func (h *JobHandler) CompleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	job, err := h.jobService.CompleteJob(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, job)
}

// ListApplications godoc
//
//	@Summary	Applications to a job
//	@Tags		Jobs
//	@Produce	json
//	@Param		id	path	int	true	"Job ID"
//	@Success	200	{array}	domain.JobApplication
//	@Router		/api/jobs/{id}/applications [get]
func (h *JobHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	apps, err := h.jobService.ListApplications(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, apps)
}

// Apply godoc
//
//	@Summary	Apply to a job
//	@Tags		Jobs
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Job ID"
//	@Param		request	body		dto.CreateApplicationRequestDTO	true	"Application"
//	@Success	201		{object}	domain.JobApplication
//	@Failure	400		{object}	utils.Response	"Invalid application data"
//	@Failure	404		{object}	utils.Response	"Job not found"
//	@Failure	409		{object}	utils.Response	"Job is not accepting applications"
//	@Router		/api/jobs/{id}/applications [post]
func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	var req dto.CreateApplicationRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application data")
		return
	}
	app, err := h.jobService.Apply(r.Context(), id, req.UserID, req.Message)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, app)
}

// UpdateApplication godoc
//
//	@Summary	Update an application
//	@Tags		Jobs
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Application ID"
//	@Param		request	body		dto.UpdateApplicationRequestDTO	true	"Fields to change"
//	@Success	200		{object}	domain.JobApplication
//	@Failure	400		{object}	utils.Response	"Invalid application data"
//	@Failure	404		{object}	utils.Response	"Application not found"
//	@Router		/api/applications/{id} [patch]
func (h *JobHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}
	var req dto.UpdateApplicationRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application data")
		return
	}
	app, err := h.jobService.UpdateApplication(r.Context(), id, req.ToDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, app)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, jobservice.ErrJobNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Job not found")
	case errors.Is(err, jobservice.ErrApplicationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Application not found")
	case errors.Is(err, jobservice.ErrJobNotActive), errors.Is(err, jobservice.ErrOwnJob):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
