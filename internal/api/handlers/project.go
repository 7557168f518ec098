package handlers

import (
	"net/http"

	"business-manager-backend/internal/auth"
	"business-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects and their line items
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject handles POST /projects
// @Summary Create a project
// @Description Create a project directly, without a proposal. Line items start pending.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} SuccessResponse{data=service.ProjectResponse} "Created project"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(c, &req, auth.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, project)
}

// GetProject handles GET /projects/:id
// @Summary Get a project
// @Description Get a project with its line items, total and progress
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} SuccessResponse{data=service.ProjectResponse} "Project"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete a project
// @Description Delete a project and its line items. The source proposal stays converted.
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} SuccessResponse "Project deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c, id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true, "id": id})
}

// GetProjectTotal handles GET /projects/:id/total
// @Summary Project total
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} SuccessResponse "Total"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/total [get]
func (h *ProjectHandler) GetProjectTotal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	total, err := h.projectService.CalculateProjectTotal(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"id": id, "total": total})
}

// GetProjectProgress handles GET /projects/:id/progress
// @Summary Project progress
// @Description Percentage of completed line items, 0 when there are none
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} SuccessResponse "Progress"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/progress [get]
func (h *ProjectHandler) GetProjectProgress(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	progress, err := h.projectService.CalculateProjectProgress(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"id": id, "progress": progress})
}

// UpdateProjectStatus handles PUT /projects/:id/status
// @Summary Change project status
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param status body service.StatusRequest true "New status"
// @Success 200 {object} SuccessResponse{data=service.ProjectResponse} "Updated project"
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/status [put]
func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdateProjectStatus(c, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, project)
}

// AddLineItem handles POST /projects/:id/line-items
// @Summary Add a project line item
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param item body service.LineItemRequest true "Line item"
// @Success 201 {object} SuccessResponse{data=service.ProjectResponse} "Project with the new item"
// @Failure 400 {object} ErrorResponse "Invalid line item"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/line-items [post]
func (h *ProjectHandler) AddLineItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.LineItemRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.AddLineItem(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, project)
}

// RemoveLineItem handles DELETE /projects/:id/line-items/:itemId
// @Summary Remove a project line item
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param itemId path int true "Line item ID"
// @Success 200 {object} SuccessResponse{data=service.ProjectResponse} "Project without the item"
// @Failure 404 {object} ErrorResponse "Project or line item not found"
// @Security BearerAuth
// @Router /projects/{id}/line-items/{itemId} [delete]
func (h *ProjectHandler) RemoveLineItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	project, err := h.projectService.RemoveLineItem(c, id, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, project)
}

// UpdateProjectServiceStatus handles PUT /project-services/:id/status
// @Summary Change a project line item status
// @Description Mark a project line item pending, in progress or completed
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project line item ID"
// @Param status body service.StatusRequest true "New status"
// @Success 200 {object} SuccessResponse{data=models.ProjectService} "Updated line item"
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Failure 404 {object} ErrorResponse "Line item not found"
// @Security BearerAuth
// @Router /project-services/{id}/status [put]
func (h *ProjectHandler) UpdateProjectServiceStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.projectService.UpdateProjectServiceStatus(c, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, item)
}
