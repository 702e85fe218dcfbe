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

type TestRequestService struct {
	store repo.Store
	log   *zap.Logger
}

func NewTestRequestService(store repo.Store, log *zap.Logger) *TestRequestService {
	return &TestRequestService{store: store, log: log}
}

// GET /api/test-requests/
func (s *TestRequestService) Hello(c *fiber.Ctx) error {
	return c.SendString("Hello TestRequest!")
}

// POST /api/test-requests/
func (s *TestRequestService) Create(c *fiber.Ctx) error {
	var req model.CreateTestRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Error: "Invalid request data"})
	}

	requestID := uuid.NewString()
	request := model.TestRequest{
		RequestID:   requestID,
		ProjectID:   req.ProjectID,
		DeveloperID: req.DeveloperID,
		Title:       req.Title,
		Description: req.Description,
		DemoURL:     req.DemoURL,
		Reward:      req.Reward,
		Status:      req.Status,
		CreatedAt:   time.Now().UTC(),
	}
	doc, err := model.ToDocument(request, model.IDField(repo.TestRequests))
	if err == nil {
		err = s.store.Set(c.Context(), repo.TestRequests, requestID, doc)
	}
	if err != nil {
		s.log.Error("creating test request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error creating test request"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Test request created successfully",
		"requestId": requestID,
	})
}

// GET /api/test-requests/:id
func (s *TestRequestService) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := s.store.Get(c.Context(), repo.TestRequests, id)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "Test request not found"})
	}
	var request model.TestRequest
	if err == nil {
		err = model.FromDocument(doc, id, model.IDField(repo.TestRequests), &request)
	}
	if err != nil {
		s.log.Error("fetching test request", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching test request"})
	}
	return c.JSON(request)
}

// PATCH /api/test-requests/:id
func (s *TestRequestService) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req model.UpdateTestRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Error: "Invalid request data"})
	}

	if _, err := s.store.Get(c.Context(), repo.TestRequests, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "Test request not found"})
		}
		s.log.Error("updating test request", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error updating test request"})
	}
	if err := s.store.Update(c.Context(), repo.TestRequests, id, req.Fields()); err != nil {
		s.log.Error("updating test request", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error updating test request"})
	}
	return c.JSON(model.MessageResponse{Message: "Test request updated successfully"})
}

// DELETE /api/test-requests/:id
func (s *TestRequestService) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := s.store.Get(c.Context(), repo.TestRequests, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "Test request not found"})
		}
		s.log.Error("deleting test request", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error deleting test request"})
	}
	if err := s.store.Delete(c.Context(), repo.TestRequests, id); err != nil {
		s.log.Error("deleting test request", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error deleting test request"})
	}
	return c.JSON(model.MessageResponse{Message: "Test request deleted successfully"})
}

// GET /api/test-requests/:id/bugs
func (s *TestRequestService) Bugs(c *fiber.Ctx) error {
	id := c.Params("id")
	snapshots, err := s.store.FindByField(c.Context(), repo.Bugs, "requestId", id, "")
	if err != nil {
		s.log.Error("fetching bugs", zap.String("requestId", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching bugs"})
	}
	if len(snapshots) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "No bugs found for this test request"})
	}

	bugs := make([]model.BugReportWithID, 0, len(snapshots))
	for _, snap := range snapshots {
		var report model.BugReport
		if err := model.FromDocument(snap.Data, snap.ID, model.IDField(repo.Bugs), &report); err != nil {
			s.log.Error("decoding bug report", zap.String("id", snap.ID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching bugs"})
		}
		bugs = append(bugs, model.BugReportWithID{ID: snap.ID, BugReport: report})
	}
	return c.JSON(bugs)
}
