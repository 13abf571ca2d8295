package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentUC domain.DocumentUsecase
}

func NewDocumentHandler(r *gin.RouterGroup, documentUC domain.DocumentUsecase) {
	handler := &DocumentHandler{documentUC: documentUC}

	documents := r.Group("/documents")
	{
		documents.GET("", handler.List)
		documents.POST("", handler.Create)
		documents.GET("/:id", handler.Get)
		documents.GET("/:id/download", handler.Download)
		documents.PUT("/:id", handler.Update)
		documents.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Param        q             query  string  false  "Free-text search over titles"
// @Param        status        query  string  false  "Status filter"
// @Param        type          query  string  false  "Type filter"
// @Param        candidate_id  query  string  false  "Restrict to one candidate"
// @Success      200  {object}  response.Response{data=[]domain.Document}
// @Failure      401  {object}  response.Response
// @Router       /documents [get]
// @Security     BearerAuth
func (h *DocumentHandler) List(c *gin.Context) {
	var (
		documents []domain.Document
		err       error
	)
	if candidateID := c.Query("candidate_id"); candidateID != "" {
		documents, err = h.documentUC.ListDocumentsByCandidate(c, candidateID)
	} else {
		documents, err = h.documentUC.ListDocuments(c, domain.DocumentFilter{
			Query:  c.Query("q"),
			Status: c.Query("status"),
			Type:   c.Query("type"),
		})
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Documents", documents)
}

// Create godoc
// @Summary      Upload a document for a candidate
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file          formData  file    true   "Document file"
// @Param        candidate_id  formData  string  true   "Candidate id"
// @Param        type          formData  string  true   "id, contract, certification or other"
// @Param        title         formData  string  true   "Display title"
// @Param        status        formData  string  false  "valid (default), expired or pending"
// @Success      201  {object}  response.Response{data=domain.Document}
// @Failure      400  {object}  response.Response
// @Router       /documents [post]
// @Security     BearerAuth
func (h *DocumentHandler) Create(c *gin.Context) {
	filename, data, err := readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}

	document := domain.Document{
		CandidateID: c.PostForm("candidate_id"),
		Type:        c.PostForm("type"),
		Title:       c.PostForm("title"),
		Status:      c.PostForm("status"),
	}

	if err := h.documentUC.CreateDocument(c, &document, filename, data); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Document enregistré", document)
}

// Get godoc
// @Summary      Get a document
// @Tags         documents
// @Produce      json
// @Param        id  path  string  true  "Document id"
// @Success      200  {object}  response.Response{data=domain.Document}
// @Failure      404  {object}  response.Response
// @Router       /documents/{id} [get]
// @Security     BearerAuth
func (h *DocumentHandler) Get(c *gin.Context) {
	document, err := h.documentUC.GetDocument(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Document", document)
}

// Download godoc
// @Summary      Get a short-lived download link for a document's file
// @Tags         documents
// @Produce      json
// @Param        id  path  string  true  "Document id"
// @Success      200  {object}  response.Response{data=object}
// @Failure      404  {object}  response.Response
// @Router       /documents/{id}/download [get]
// @Security     BearerAuth
func (h *DocumentHandler) Download(c *gin.Context) {
	url, err := h.documentUC.DownloadDocument(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Lien de téléchargement", gin.H{"url": url})
}

// Update godoc
// @Summary      Update a document's metadata
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id        path  string           true  "Document id"
// @Param        document  body  domain.Document  true  "Document payload"
// @Success      200  {object}  response.Response{data=domain.Document}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /documents/{id} [put]
// @Security     BearerAuth
func (h *DocumentHandler) Update(c *gin.Context) {
	var document domain.Document
	if err := c.ShouldBindJSON(&document); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}
	document.ID = c.Param("id")

	if err := h.documentUC.UpdateDocument(c, &document); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Document mis à jour", document)
}

// Delete godoc
// @Summary      Delete a document and its stored file
// @Tags         documents
// @Produce      json
// @Param        id  path  string  true  "Document id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /documents/{id} [delete]
// @Security     BearerAuth
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.documentUC.DeleteDocument(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Document supprimé", nil)
}
