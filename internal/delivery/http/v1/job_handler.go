package v1

import (
	"net/http"
	"strings"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/parse"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// generateRequest is the payload of the posting generator.
type generateRequest struct {
	Title      string `json:"title"`
	Experience string `json:"experience"`
	Location   string `json:"location"`
	Salary     string `json:"salary"`
}

// jobRequest accepts list fields either as JSON arrays or as the raw text of
// the form's inputs: skills comma-separated, requirements and benefits one
// item per line.
type jobRequest struct {
	domain.JobPosting
	SkillsText       string `json:"skills_text,omitempty"`
	RequirementsText string `json:"requirements_text,omitempty"`
	BenefitsText     string `json:"benefits_text,omitempty"`
}

func (r *jobRequest) model() *domain.JobPosting {
	job := r.JobPosting
	if strings.TrimSpace(r.SkillsText) != "" {
		job.Skills = parse.List(r.SkillsText)
	}
	if strings.TrimSpace(r.RequirementsText) != "" {
		job.Requirements = parse.Lines(r.RequirementsText)
	}
	if strings.TrimSpace(r.BenefitsText) != "" {
		job.Benefits = parse.Lines(r.BenefitsText)
	}
	return &job
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.POST("/generate", handler.Generate)
		jobs.GET("/:id", handler.Get)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
		jobs.POST("/:id/publish", handler.Publish)
	}
}

// List godoc
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Param        q       query  string  false  "Free-text search over title, department and location"
// @Param        status  query  string  false  "Status filter"
// @Success      200  {object}  response.Response{data=[]domain.JobPosting}
// @Failure      401  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	}

	jobs, err := h.jobUC.ListJobs(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offres", jobs)
}

// Create godoc
// @Summary      Create a job posting
// @Description  The posting starts as a draft and receives its attractiveness score once, at creation.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body  domain.JobPosting  true  "Job posting payload"
// @Success      201  {object}  response.Response{data=domain.JobPosting}
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}

	job := req.model()
	if err := h.jobUC.CreateJob(c, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Offre créée", job)
}

// Get godoc
// @Summary      Get a job posting
// @Description  Counts a view on every read.
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Job id"
// @Success      200  {object}  response.Response{data=domain.JobPosting}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.GetJob(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offre", job)
}

// Update godoc
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path  string             true  "Job id"
// @Param        job  body  domain.JobPosting  true  "Job posting payload"
// @Success      200  {object}  response.Response{data=domain.JobPosting}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}

	job := req.model()
	job.ID = c.Param("id")
	if err := h.jobUC.UpdateJob(c, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offre mise à jour", job)
}

// Delete godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Job id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offre supprimée", nil)
}

// Publish godoc
// @Summary      Publish a draft job posting
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Job id"
// @Success      200  {object}  response.Response{data=domain.JobPosting}
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response  "Posting is not a draft"
// @Router       /jobs/{id}/publish [post]
// @Security     BearerAuth
func (h *JobHandler) Publish(c *gin.Context) {
	job, err := h.jobUC.PublishJob(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offre publiée", job)
}

// Generate godoc
// @Summary      Generate a posting draft from a job title
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        request  body  generateRequest  true  "Generation parameters"
// @Success      200  {object}  response.Response{data=domain.GeneratedPosting}
// @Failure      400  {object}  response.Response
// @Router       /jobs/generate [post]
// @Security     BearerAuth
func (h *JobHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}

	posting, err := h.jobUC.GeneratePosting(c, req.Title, req.Experience, req.Location, req.Salary)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offre générée", posting)
}
