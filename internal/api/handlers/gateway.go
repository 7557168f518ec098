package handlers

import (
	"net/http"

	"business-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GatewayHandler exposes registry-driven row access to the desktop client
type GatewayHandler struct {
	gatewayService service.GatewayServiceInterface
}

// NewGatewayHandler creates a new gateway handler
func NewGatewayHandler(gatewayService service.GatewayServiceInterface) *GatewayHandler {
	return &GatewayHandler{
		gatewayService: gatewayService,
	}
}

// Query handles POST /gateway/query
// @Summary Query rows
// @Description Return one page of rows from a registered table, optionally filtered by a case-insensitive search and ordered by a sortable column
// @Tags gateway
// @Accept json
// @Produce json
// @Param request body service.QueryRequest true "Query"
// @Success 200 {object} SuccessResponse{data=service.QueryResponse} "One page of rows"
// @Failure 400 {object} ErrorResponse "Unknown table or invalid paging, search or order"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Security BearerAuth
// @Router /gateway/query [post]
func (h *GatewayHandler) Query(c *gin.Context) {
	var req service.QueryRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.gatewayService.Query(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// Count handles POST /gateway/count
// @Summary Count rows
// @Description Count the rows of a registered table matching an optional search
// @Tags gateway
// @Accept json
// @Produce json
// @Param request body service.CountRequest true "Count"
// @Success 200 {object} SuccessResponse{data=service.CountResponse} "Number of matching rows"
// @Failure 400 {object} ErrorResponse "Unknown table or invalid search"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Security BearerAuth
// @Router /gateway/count [post]
func (h *GatewayHandler) Count(c *gin.Context) {
	var req service.CountRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.gatewayService.Count(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// Create handles POST /gateway/create
// @Summary Insert a row
// @Description Insert a row into a registered table and return it with its generated primary key
// @Tags gateway
// @Accept json
// @Produce json
// @Param request body service.CreateRequest true "Row fields"
// @Success 201 {object} SuccessResponse "Created row"
// @Failure 400 {object} ErrorResponse "Unknown table or invalid fields"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Security BearerAuth
// @Router /gateway/create [post]
func (h *GatewayHandler) Create(c *gin.Context) {
	var req service.CreateRequest
	if !bindJSON(c, &req) {
		return
	}

	row, err := h.gatewayService.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, row)
}

// Update handles POST /gateway/update
// @Summary Update a row
// @Description Update the row addressed by its primary key. Conditions must name the primary key and nothing else.
// @Tags gateway
// @Accept json
// @Produce json
// @Param request body service.UpdateRequest true "Fields and primary key condition"
// @Success 200 {object} SuccessResponse{data=service.UpdateResponse} "Updated row"
// @Failure 400 {object} ErrorResponse "Unknown table, invalid fields or conditions"
// @Failure 404 {object} ErrorResponse "Row not found"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Security BearerAuth
// @Router /gateway/update [post]
func (h *GatewayHandler) Update(c *gin.Context) {
	var req service.UpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.gatewayService.Update(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// Delete handles POST /gateway/delete
// @Summary Delete a row
// @Description Delete the row addressed by its primary key
// @Tags gateway
// @Accept json
// @Produce json
// @Param request body service.DeleteRequest true "Primary key condition"
// @Success 200 {object} SuccessResponse{data=service.DeleteResponse} "Delete confirmation"
// @Failure 400 {object} ErrorResponse "Unknown table or invalid conditions"
// @Failure 404 {object} ErrorResponse "Row not found"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Security BearerAuth
// @Router /gateway/delete [post]
func (h *GatewayHandler) Delete(c *gin.Context) {
	var req service.DeleteRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.gatewayService.Delete(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}
