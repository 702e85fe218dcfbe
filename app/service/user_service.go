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

// UserService reads and writes the users collection. The upstream
// service pointed this router at the bug-reports collection by mistake;
// that is not carried over.
type UserService struct {
	store repo.Store
	log   *zap.Logger
}

func NewUserService(store repo.Store, log *zap.Logger) *UserService {
	return &UserService{store: store, log: log}
}

// GET /api/users/
func (s *UserService) Hello(c *fiber.Ctx) error {
	return c.SendString("Hello Users!")
}

// POST /api/users/
func (s *UserService) Create(c *fiber.Ctx) error {
	var req model.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Error: "Invalid request data"})
	}

	userID := uuid.NewString()
	user := model.User{
		UserID:    userID,
		Email:     req.Email,
		CampusID:  req.CampusID,
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}
	doc, err := model.ToDocument(user, model.IDField(repo.Users))
	if err == nil {
		err = s.store.Set(c.Context(), repo.Users, userID, doc)
	}
	if err != nil {
		s.log.Error("creating user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error creating user"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"userId":  userID,
	})
}

// GET /api/users/:id
func (s *UserService) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := s.store.Get(c.Context(), repo.Users, id)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "User not found"})
	}
	var user model.User
	if err == nil {
		err = model.FromDocument(doc, id, model.IDField(repo.Users), &user)
	}
	if err != nil {
		s.log.Error("fetching user", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching user"})
	}
	return c.JSON(user)
}

// PATCH /api/users/:id
func (s *UserService) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req model.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Error: "Invalid request data"})
	}

	if _, err := s.store.Get(c.Context(), repo.Users, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "User not found"})
		}
		s.log.Error("updating user", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error updating user"})
	}
	if err := s.store.Update(c.Context(), repo.Users, id, req.Fields()); err != nil {
		s.log.Error("updating user", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error updating user"})
	}
	return c.JSON(model.MessageResponse{Message: "User updated successfully"})
}

// DELETE /api/users/:id
func (s *UserService) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := s.store.Get(c.Context(), repo.Users, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "User not found"})
		}
		s.log.Error("deleting user", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error deleting user"})
	}
	if err := s.store.Delete(c.Context(), repo.Users, id); err != nil {
		s.log.Error("deleting user", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error deleting user"})
	}
	return c.JSON(model.MessageResponse{Message: "User deleted successfully"})
}

// GET /api/users/:id/projects
func (s *UserService) Projects(c *fiber.Ctx) error {
	id := c.Params("id")
	snapshots, err := s.store.FindByField(c.Context(), repo.Projects, "developerId", id, "")
	if err != nil {
		s.log.Error("fetching projects", zap.String("userId", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching projects"})
	}
	if len(snapshots) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "No projects found for this user"})
	}

	projects := make([]model.ProjectWithID, 0, len(snapshots))
	for _, snap := range snapshots {
		var project model.Project
		if err := model.FromDocument(snap.Data, snap.ID, model.IDField(repo.Projects), &project); err != nil {
			s.log.Error("decoding project", zap.String("id", snap.ID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching projects"})
		}
		projects = append(projects, model.ProjectWithID{ID: snap.ID, Project: project})
	}
	return c.JSON(projects)
}

// GET /api/users/:id/bugReports
func (s *UserService) BugReports(c *fiber.Ctx) error {
	id := c.Params("id")
	snapshots, err := s.store.FindByField(c.Context(), repo.Bugs, "testerId", id, "")
	if err != nil {
		s.log.Error("fetching bug reports", zap.String("userId", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching bug reports"})
	}
	if len(snapshots) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "No bug reports found for this user"})
	}

	reports := make([]model.BugReportWithID, 0, len(snapshots))
	for _, snap := range snapshots {
		var report model.BugReport
		if err := model.FromDocument(snap.Data, snap.ID, model.IDField(repo.Bugs), &report); err != nil {
			s.log.Error("decoding bug report", zap.String("id", snap.ID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching bug reports"})
		}
		reports = append(reports, model.BugReportWithID{ID: snap.ID, BugReport: report})
	}
	return c.JSON(reports)
}
