package handlers

import (
	"net/http"

	"business-manager-backend/internal/auth"
	"business-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProposalHandler handles HTTP requests for proposals
type ProposalHandler struct {
	proposalService service.ProposalServiceInterface
}

// NewProposalHandler creates a new proposal handler
func NewProposalHandler(proposalService service.ProposalServiceInterface) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalService,
	}
}

// CreateProposal handles POST /proposals
// @Summary Create a proposal
// @Description Create a draft proposal for a client together with its line items
// @Tags proposals
// @Accept json
// @Produce json
// @Param proposal body service.CreateProposalRequest true "Proposal data"
// @Success 201 {object} SuccessResponse{data=service.ProposalResponse} "Created proposal"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Security BearerAuth
// @Router /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var req service.CreateProposalRequest
	if !bindJSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.CreateProposal(c, &req, auth.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, proposal)
}

// GetProposal handles GET /proposals/:id
// @Summary Get a proposal
// @Description Get a proposal with its line items and total
// @Tags proposals
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} SuccessResponse{data=service.ProposalResponse} "Proposal"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Proposal not found"
// @Security BearerAuth
// @Router /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	proposal, err := h.proposalService.GetProposal(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, proposal)
}

// DeleteProposal handles DELETE /proposals/:id
// @Summary Delete a proposal
// @Description Delete a proposal that has not been converted, together with its line items
// @Tags proposals
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} SuccessResponse "Proposal deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Proposal not found"
// @Failure 409 {object} ErrorResponse "Proposal already converted"
// @Security BearerAuth
// @Router /proposals/{id} [delete]
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.proposalService.DeleteProposal(c, id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true, "id": id})
}

// GetProposalTotal handles GET /proposals/:id/total
// @Summary Proposal total
// @Description Sum of price times quantity over the proposal's line items
// @Tags proposals
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} SuccessResponse "Total"
// @Failure 404 {object} ErrorResponse "Proposal not found"
// @Security BearerAuth
// @Router /proposals/{id}/total [get]
func (h *ProposalHandler) GetProposalTotal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	total, err := h.proposalService.CalculateProposalTotal(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"id": id, "total": total})
}

// UpdateProposalStatus handles PUT /proposals/:id/status
// @Summary Change proposal status
// @Description Move a proposal along draft, sent, accepted or rejected. Converted is reached only by conversion.
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param status body service.StatusRequest true "New status"
// @Success 200 {object} SuccessResponse{data=service.ProposalResponse} "Updated proposal"
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Failure 404 {object} ErrorResponse "Proposal not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /proposals/{id}/status [put]
func (h *ProposalHandler) UpdateProposalStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.UpdateProposalStatus(c, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, proposal)
}

// ConvertToProject handles POST /proposals/:id/convert
// @Summary Convert a proposal into a project
// @Description Create a project from an accepted proposal, cloning its line items as pending work. The body is optional and overrides the derived project fields.
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param overrides body service.ConvertRequest false "Project field overrides"
// @Success 201 {object} SuccessResponse{data=service.ProjectResponse} "Created project"
// @Failure 400 {object} ErrorResponse "Invalid overrides"
// @Failure 404 {object} ErrorResponse "Proposal not found"
// @Failure 409 {object} ErrorResponse "Proposal not accepted or already converted"
// @Security BearerAuth
// @Router /proposals/{id}/convert [post]
func (h *ProposalHandler) ConvertToProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var overrides *service.ConvertRequest
	if c.Request.ContentLength != 0 {
		overrides = &service.ConvertRequest{}
		if !bindJSON(c, overrides) {
			return
		}
	}

	project, err := h.proposalService.ConvertToProject(c, id, overrides, auth.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, project)
}

// AddLineItem handles POST /proposals/:id/line-items
// @Summary Add a proposal line item
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param item body service.LineItemRequest true "Line item"
// @Success 201 {object} SuccessResponse{data=service.ProposalResponse} "Proposal with the new item"
// @Failure 400 {object} ErrorResponse "Invalid line item"
// @Failure 404 {object} ErrorResponse "Proposal not found"
// @Failure 409 {object} ErrorResponse "Proposal already converted"
// @Security BearerAuth
// @Router /proposals/{id}/line-items [post]
func (h *ProposalHandler) AddLineItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.LineItemRequest
	if !bindJSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.AddLineItem(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, proposal)
}

// UpdateLineItem handles PUT /proposals/:id/line-items/:itemId
// @Summary Edit a proposal line item
// @Description Change the service, price, quantity or notes of a line item. Omitted fields keep their value.
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param itemId path int true "Line item ID"
// @Param item body service.UpdateLineItemRequest true "Changed fields"
// @Success 200 {object} SuccessResponse{data=service.ProposalResponse} "Updated proposal"
// @Failure 400 {object} ErrorResponse "Invalid line item"
// @Failure 404 {object} ErrorResponse "Proposal or line item not found"
// @Failure 409 {object} ErrorResponse "Proposal already converted"
// @Security BearerAuth
// @Router /proposals/{id}/line-items/{itemId} [put]
func (h *ProposalHandler) UpdateLineItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	var req service.UpdateLineItemRequest
	if !bindJSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.UpdateLineItem(c, id, itemID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, proposal)
}

// RemoveLineItem handles DELETE /proposals/:id/line-items/:itemId
// @Summary Remove a proposal line item
// @Tags proposals
// @Produce json
// @Param id path int true "Proposal ID"
// @Param itemId path int true "Line item ID"
// @Success 200 {object} SuccessResponse{data=service.ProposalResponse} "Proposal without the item"
// @Failure 404 {object} ErrorResponse "Proposal or line item not found"
// @Failure 409 {object} ErrorResponse "Proposal already converted"
// @Security BearerAuth
// @Router /proposals/{id}/line-items/{itemId} [delete]
func (h *ProposalHandler) RemoveLineItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	proposal, err := h.proposalService.RemoveLineItem(c, id, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, proposal)
}
