package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NU394-s2025TTh/BugSnacks/app/model"
	"github.com/NU394-s2025TTh/BugSnacks/app/repo"
)

type ProjectService struct {
	store repo.Store
	log   *zap.Logger
}

func NewProjectService(store repo.Store, log *zap.Logger) *ProjectService {
	return &ProjectService{store: store, log: log}
}

// GET /api/projects/
func (s *ProjectService) Hello(c *fiber.Ctx) error {
	return c.SendString("Hello Project!")
}

// POST /api/projects/
func (s *ProjectService) Create(c *fiber.Ctx) error {
	var req model.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Error: "Invalid request data"})
	}

	projectID := uuid.NewString()
	project := model.Project{
		ProjectID:   projectID,
		DeveloperID: req.UserID,
		CampusID:    req.CampusID,
		Name:        req.Name,
		Description: req.Description,
		Platform:    req.Platform,
		CreatedAt:   time.Now().UTC(),
	}
	doc, err := model.ToDocument(project, model.IDField(repo.Projects))
	if err == nil {
		err = s.store.Set(c.Context(), repo.Projects, projectID, doc)
	}
	if err != nil {
		s.log.Error("creating project", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error creating project"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Project created successfully",
		"projectId": projectID,
	})
}

// GET /api/projects/:id
func (s *ProjectService) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := s.store.Get(c.Context(), repo.Projects, id)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "Project not found"})
	}
	var project model.Project
	if err == nil {
		err = model.FromDocument(doc, id, model.IDField(repo.Projects), &project)
	}
	if err != nil {
		s.log.Error("fetching project", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching project"})
	}
	return c.JSON(project)
}

// GET /api/projects/campus/:campusId
func (s *ProjectService) ByCampus(c *fiber.Ctx) error {
	campusID := c.Params("campusId")
	snapshots, err := s.store.FindByField(c.Context(), repo.Projects, "campusId", campusID, "createdAt")
	if err != nil {
		s.log.Error("fetching projects by campus", zap.String("campusId", campusID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching project"})
	}
	if len(snapshots) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "Projects not found in this campus"})
	}

	projects := make([]model.ProjectWithID, 0, len(snapshots))
	for _, snap := range snapshots {
		var project model.Project
		if err := model.FromDocument(snap.Data, snap.ID, model.IDField(repo.Projects), &project); err != nil {
			s.log.Error("decoding project", zap.String("id", snap.ID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching project"})
		}
		projects = append(projects, model.ProjectWithID{ID: snap.ID, Project: project})
	}
	return c.JSON(projects)
}

// PATCH /api/projects/:id
func (s *ProjectService) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req model.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Error: "Invalid request data"})
	}

	// Existence check is advisory: a concurrent delete between the read
	// and the update wins, same as upstream. No transaction.
	if _, err := s.store.Get(c.Context(), repo.Projects, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "Project not found"})
		}
		s.log.Error("updating project", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error updating project"})
	}
	if err := s.store.Update(c.Context(), repo.Projects, id, req.Fields()); err != nil {
		s.log.Error("updating project", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error updating project"})
	}
	return c.JSON(model.MessageResponse{Message: "Project updated successfully"})
}

// DELETE /api/projects/:id
func (s *ProjectService) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := s.store.Get(c.Context(), repo.Projects, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "Project not found"})
		}
		s.log.Error("deleting project", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error deleting project"})
	}
	if err := s.store.Delete(c.Context(), repo.Projects, id); err != nil {
		s.log.Error("deleting project", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error deleting project"})
	}
	return c.JSON(model.MessageResponse{Message: "Project deleted successfully"})
}

// GET /api/projects/:id/requests
func (s *ProjectService) TestRequests(c *fiber.Ctx) error {
	id := c.Params("id")
	snapshots, err := s.store.FindByField(c.Context(), repo.TestRequests, "projectId", id, "")
	if err != nil {
		s.log.Error("fetching test requests", zap.String("projectId", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching test requests"})
	}
	if len(snapshots) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "No test requests found for this project"})
	}

	requests := make([]model.TestRequestWithID, 0, len(snapshots))
	for _, snap := range snapshots {
		var request model.TestRequest
		if err := model.FromDocument(snap.Data, snap.ID, model.IDField(repo.TestRequests), &request); err != nil {
			s.log.Error("decoding test request", zap.String("id", snap.ID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching test requests"})
		}
		requests = append(requests, model.TestRequestWithID{ID: snap.ID, TestRequest: request})
	}
	return c.JSON(requests)
}
