package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/fcamara/consultores-api/internal/domain/errors"
	"github.com/fcamara/consultores-api/internal/handlers/dto"
	"github.com/fcamara/consultores-api/internal/handlers/middleware"
	"github.com/fcamara/consultores-api/internal/services"
)

// ConsultorHandler lida com requisições HTTP relacionadas a consultores
type ConsultorHandler struct {
	consultorService *services.ConsultorService
	errorWriter      *ErrorWriter
}

// NewConsultorHandler cria um novo ConsultorHandler
func NewConsultorHandler(consultorService *services.ConsultorService, errorWriter *ErrorWriter) *ConsultorHandler {
	return &ConsultorHandler{
		consultorService: consultorService,
		errorWriter:      errorWriter,
	}
}

// ListConsultores godoc
// @Summary      Lista consultores
// @Description  Lista os consultores cadastrados e presentes no diretório, ordenados por apelido
// @Tags         consultores
// @Produce      json
// @Success      200  {array}   dto.ConsultorResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /consultores [get]
func (h *ConsultorHandler) ListConsultores(c *gin.Context) {
	perfis, err := h.consultorService.ListConsultores(c.Request.Context())
	if err != nil {
		h.errorWriter.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConsultorResponses(perfis))
}

// GetConsultor godoc
// @Summary      Busca um consultor
// @Tags         consultores
// @Produce      json
// @Param        id   path      int  true  "ID do consultor"
// @Success      200  {object}  dto.ConsultorResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /consultores/{id} [get]
func (h *ConsultorHandler) GetConsultor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	perfil, err := h.consultorService.GetConsultor(c.Request.Context(), id)
	if err != nil {
		h.errorWriter.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConsultorResponse(perfil))
}

// CreateConsultor godoc
// @Summary      Cadastra um consultor
// @Description  Somente e-mails presentes no diretório de colaboradores podem ser cadastrados
// @Tags         consultores
// @Accept       json
// @Param        request  body  dto.CreateConsultorRequest  true  "Dados do cadastro"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /consultores [post]
func (h *ConsultorHandler) CreateConsultor(c *gin.Context) {
	var req dto.CreateConsultorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorWriter.Write(c, domainerrors.Wrap(domainerrors.KindValidation, domainerrors.MsgInvalidBody, err))
		return
	}

	if err := h.consultorService.CreateConsultor(c.Request.Context(), req.ToInput()); err != nil {
		h.errorWriter.Write(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// UpdateConsultor godoc
// @Summary      Atualiza o próprio perfil
// @Description  Atualiza apelido, senha e/ou imagem (base64) do consultor autenticado
// @Tags         consultores
// @Accept       json
// @Security     BearerAuth
// @Param        request  body  dto.UpdateConsultorRequest  true  "Campos a atualizar"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /consultores [put]
func (h *ConsultorHandler) UpdateConsultor(c *gin.Context) {
	consultor, ok := middleware.CurrentConsultor(c)
	if !ok {
		h.errorWriter.Write(c, domainerrors.New(domainerrors.KindUnauthenticated, domainerrors.MsgUnauthenticated))
		return
	}

	// Corpo vazio segue para o serviço, que exige ao menos um campo
	var req dto.UpdateConsultorRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.errorWriter.Write(c, domainerrors.Wrap(domainerrors.KindValidation, domainerrors.MsgInvalidBody, err))
		return
	}

	if err := h.consultorService.UpdateConsultor(c.Request.Context(), consultor, req.ToInput()); err != nil {
		h.errorWriter.Write(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteConsultor godoc
// @Summary      Remove um consultor
// @Tags         consultores
// @Security     BearerAuth
// @Param        id   path  int  true  "ID do consultor"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /consultores/{id} [delete]
func (h *ConsultorHandler) DeleteConsultor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.consultorService.DeleteConsultor(c.Request.Context(), id); err != nil {
		h.errorWriter.Write(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *ConsultorHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.errorWriter.Write(c, domainerrors.Validation(domainerrors.MsgInvalidID,
			domainerrors.FieldError{Field: "id", Tag: "numeric"}))
		return 0, false
	}
	return id, true
}
