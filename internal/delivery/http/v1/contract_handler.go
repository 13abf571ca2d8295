package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	contractUC domain.ContractUsecase
}

func NewContractHandler(r *gin.RouterGroup, contractUC domain.ContractUsecase) {
	handler := &ContractHandler{contractUC: contractUC}

	contracts := r.Group("/contracts")
	{
		contracts.GET("", handler.List)
		contracts.POST("", handler.Create)
		contracts.GET("/:id", handler.Get)
		contracts.PUT("/:id", handler.Update)
		contracts.DELETE("/:id", handler.Delete)
		contracts.POST("/:id/send", handler.Send)
		contracts.POST("/:id/sign", handler.Sign)
		contracts.POST("/:id/files/:kind", handler.AttachFile)
	}
}

// List godoc
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Param        candidate_id  query  string  false  "Restrict to one candidate"
// @Success      200  {object}  response.Response{data=[]domain.Contract}
// @Failure      401  {object}  response.Response
// @Router       /contracts [get]
// @Security     BearerAuth
func (h *ContractHandler) List(c *gin.Context) {
	var (
		contracts []domain.Contract
		err       error
	)
	if candidateID := c.Query("candidate_id"); candidateID != "" {
		contracts, err = h.contractUC.ListContractsByCandidate(c, candidateID)
	} else {
		contracts, err = h.contractUC.ListContracts(c)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contrats", contracts)
}

// Create godoc
// @Summary      Create a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        contract  body  domain.Contract  true  "Contract payload"
// @Success      201  {object}  response.Response{data=domain.Contract}
// @Failure      400  {object}  response.Response
// @Router       /contracts [post]
// @Security     BearerAuth
func (h *ContractHandler) Create(c *gin.Context) {
	var contract domain.Contract
	if err := c.ShouldBindJSON(&contract); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}

	if err := h.contractUC.CreateContract(c, &contract); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Contrat créé", contract)
}

// Get godoc
// @Summary      Get a contract
// @Tags         contracts
// @Produce      json
// @Param        id  path  string  true  "Contract id"
// @Success      200  {object}  response.Response{data=domain.Contract}
// @Failure      404  {object}  response.Response
// @Router       /contracts/{id} [get]
// @Security     BearerAuth
func (h *ContractHandler) Get(c *gin.Context) {
	contract, err := h.contractUC.GetContract(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contrat", contract)
}

// Update godoc
// @Summary      Update a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id        path  string           true  "Contract id"
// @Param        contract  body  domain.Contract  true  "Contract payload"
// @Success      200  {object}  response.Response{data=domain.Contract}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contracts/{id} [put]
// @Security     BearerAuth
func (h *ContractHandler) Update(c *gin.Context) {
	var contract domain.Contract
	if err := c.ShouldBindJSON(&contract); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}
	contract.ID = c.Param("id")

	if err := h.contractUC.UpdateContract(c, &contract); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contrat mis à jour", contract)
}

// Delete godoc
// @Summary      Delete a contract and its stored files
// @Tags         contracts
// @Produce      json
// @Param        id  path  string  true  "Contract id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contracts/{id} [delete]
// @Security     BearerAuth
func (h *ContractHandler) Delete(c *gin.Context) {
	if err := h.contractUC.DeleteContract(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contrat supprimé", nil)
}

// Send godoc
// @Summary      Send a draft contract to the candidate
// @Tags         contracts
// @Produce      json
// @Param        id  path  string  true  "Contract id"
// @Success      200  {object}  response.Response{data=domain.Contract}
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response  "Contract is not a draft"
// @Router       /contracts/{id}/send [post]
// @Security     BearerAuth
func (h *ContractHandler) Send(c *gin.Context) {
	contract, err := h.contractUC.SendContract(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contrat envoyé", contract)
}

// Sign godoc
// @Summary      Mark a sent contract as signed
// @Tags         contracts
// @Produce      json
// @Param        id  path  string  true  "Contract id"
// @Success      200  {object}  response.Response{data=domain.Contract}
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response  "Contract has not been sent"
// @Router       /contracts/{id}/sign [post]
// @Security     BearerAuth
func (h *ContractHandler) Sign(c *gin.Context) {
	contract, err := h.contractUC.SignContract(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contrat signé", contract)
}

// AttachFile godoc
// @Summary      Attach a contract scan or signature image
// @Tags         contracts
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Contract id"
// @Param        kind  path      string  true  "contract or signature"
// @Param        file  formData  file    true  "File to attach"
// @Success      200  {object}  response.Response{data=domain.Contract}
// @Failure      400  {object}  response.Response
// @Router       /contracts/{id}/files/{kind} [post]
// @Security     BearerAuth
func (h *ContractHandler) AttachFile(c *gin.Context) {
	filename, data, err := readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}

	contract, err := h.contractUC.AttachFile(c, c.Param("id"), c.Param("kind"), filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Fichier enregistré", contract)
}
