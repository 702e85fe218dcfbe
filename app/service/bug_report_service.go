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

type BugReportService struct {
	store repo.Store
	log   *zap.Logger
}

func NewBugReportService(store repo.Store, log *zap.Logger) *BugReportService {
	return &BugReportService{store: store, log: log}
}

// GET /api/bug-reports/
func (s *BugReportService) Hello(c *fiber.Ctx) error {
	return c.SendString("Hello BugReporter!")
}

// POST /api/bug-reports/
func (s *BugReportService) Create(c *fiber.Ctx) error {
	var req model.CreateBugReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Error: "Invalid request data"})
	}

	reportID := uuid.NewString()
	report := model.BugReport{
		ReportID:       reportID,
		RequestID:      req.RequestID,
		TesterID:       req.TesterID,
		Title:          req.Title,
		Description:    req.Description,
		Severity:       req.Severity,
		ProposedReward: req.ProposedReward,
		Status:         model.BugReportSubmitted,
		Video:          req.Video,
		Attachments:    req.Attachments,
		CreatedAt:      time.Now().UTC(),
	}
	doc, err := model.ToDocument(report, model.IDField(repo.Bugs))
	if err == nil {
		err = s.store.Set(c.Context(), repo.Bugs, reportID, doc)
	}
	if err != nil {
		s.log.Error("creating bug report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error creating bug report"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Bug report created successfully",
		"reportId": reportID,
	})
}

// GET /api/bug-reports/:id
func (s *BugReportService) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := s.store.Get(c.Context(), repo.Bugs, id)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "Bug report not found"})
	}
	var report model.BugReport
	if err == nil {
		err = model.FromDocument(doc, id, model.IDField(repo.Bugs), &report)
	}
	if err != nil {
		s.log.Error("fetching bug report", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error fetching bug report"})
	}
	return c.JSON(report)
}

// PATCH /api/bug-reports/:id
//
// Status moves SUBMITTED → VALIDATED/REJECTED → REWARDED purely as a
// client-driven value; transition legality is not enforced here.
func (s *BugReportService) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req model.UpdateBugReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Error: "Invalid request data"})
	}

	if _, err := s.store.Get(c.Context(), repo.Bugs, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "Bug report not found"})
		}
		s.log.Error("updating bug report", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error updating bug report"})
	}
	if err := s.store.Update(c.Context(), repo.Bugs, id, req.Fields()); err != nil {
		s.log.Error("updating bug report", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error updating bug report"})
	}
	return c.JSON(model.MessageResponse{Message: "Bug report updated successfully"})
}

// DELETE /api/bug-reports/:id
func (s *BugReportService) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := s.store.Get(c.Context(), repo.Bugs, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "Bug report not found"})
		}
		s.log.Error("deleting bug report", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error deleting bug report"})
	}
	if err := s.store.Delete(c.Context(), repo.Bugs, id); err != nil {
		s.log.Error("deleting bug report", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: "Error deleting bug report"})
	}
	return c.JSON(model.MessageResponse{Message: "Bug report deleted successfully"})
}
