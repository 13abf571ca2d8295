package v1

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/parse"
	"go-talent-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

// candidateRequest accepts skills either as a JSON array or as the raw
// comma-separated text of the form's skills input.
type candidateRequest struct {
	domain.Candidate
	SkillsText string `json:"skills_text,omitempty"`
}

func (r *candidateRequest) model() *domain.Candidate {
	c := r.Candidate
	if strings.TrimSpace(r.SkillsText) != "" {
		c.Skills = parse.List(r.SkillsText)
	}
	return &c
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.POST("", handler.Create)
		candidates.GET("/export", handler.Export)
		candidates.GET("/:id", handler.Get)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
		candidates.POST("/:id/cv", handler.UploadCV)
		candidates.POST("/:id/market-value", handler.EstimateMarketValue)
	}
}

// List godoc
// @Summary      List candidates
// @Description  List the caller's candidates, filtered by free-text query, skill and status
// @Tags         candidates
// @Produce      json
// @Param        q       query  string  false  "Free-text search over name and email"
// @Param        skill   query  string  false  "Exact skill filter"
// @Param        status  query  string  false  "Status filter"
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Failure      401  {object}  response.Response
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) List(c *gin.Context) {
	filter := domain.CandidateFilter{
		Query:  c.Query("q"),
		Skill:  c.Query("skill"),
		Status: c.Query("status"),
	}

	candidates, err := h.candidateUC.ListCandidates(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidats", candidates)
}

// Create godoc
// @Summary      Create a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body  domain.Candidate  true  "Candidate payload"
// @Success      201  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var req candidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}

	candidate := req.model()
	if err := h.candidateUC.CreateCandidate(c, candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidat créé", candidate)
}

// Get godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id  path  string  true  "Candidate id"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.GetCandidate(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidat", candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path  string            true  "Candidate id"
// @Param        candidate  body  domain.Candidate  true  "Candidate payload"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) Update(c *gin.Context) {
	var req candidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}

	candidate := req.model()
	candidate.ID = c.Param("id")
	if err := h.candidateUC.UpdateCandidate(c, candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidat mis à jour", candidate)
}

// Delete godoc
// @Summary      Delete a candidate and its stored CV
// @Tags         candidates
// @Produce      json
// @Param        id  path  string  true  "Candidate id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.DeleteCandidate(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidat supprimé", nil)
}

// UploadCV godoc
// @Summary      Attach a CV file to a candidate
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Candidate id"
// @Param        file  formData  file    true  "CV file (pdf, doc, docx, jpg, png)"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates/{id}/cv [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadCV(c *gin.Context) {
	filename, data, err := readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.AttachCV(c, c.Param("id"), filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV enregistré", candidate)
}

// EstimateMarketValue godoc
// @Summary      Estimate the candidate's market value
// @Tags         candidates
// @Produce      json
// @Param        id  path  string  true  "Candidate id"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/market-value [post]
// @Security     BearerAuth
func (h *CandidateHandler) EstimateMarketValue(c *gin.Context) {
	candidate, err := h.candidateUC.EstimateMarketValue(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Valeur de marché estimée", candidate)
}

// Export godoc
// @Summary      Export candidates as CSV or Excel
// @Tags         candidates
// @Produce      application/octet-stream
// @Param        format  query  string  false  "csv (default) or xlsx"
// @Param        q       query  string  false  "Free-text search"
// @Param        skill   query  string  false  "Exact skill filter"
// @Param        status  query  string  false  "Status filter"
// @Success      200  {file}  file
// @Failure      400  {object}  response.Response
// @Router       /candidates/export [get]
// @Security     BearerAuth
func (h *CandidateHandler) Export(c *gin.Context) {
	filter := domain.CandidateFilter{
		Query:  c.Query("q"),
		Skill:  c.Query("skill"),
		Status: c.Query("status"),
	}

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)
	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		data, filename, err = h.candidateUC.ExportCSV(c, filter)
		contentType = "text/csv; charset=utf-8"
	case "xlsx":
		data, filename, err = h.candidateUC.ExportExcel(c, filter)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		c.Error(apperror.BadRequest("Format d'export inconnu : " + format))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// readUpload pulls the multipart "file" part, bounded by the upload size cap.
func readUpload(c *gin.Context) (string, []byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, apperror.BadRequest("Fichier manquant (champ « file »)")
	}
	if fileHeader.Size > upload.MaxFileSize {
		return "", nil, apperror.BadRequest("Fichier trop volumineux (10 Mo maximum)")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, upload.MaxFileSize+1))
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	if int64(len(data)) > upload.MaxFileSize {
		return "", nil, apperror.BadRequest("Fichier trop volumineux (10 Mo maximum)")
	}

	return fileHeader.Filename, data, nil
}
