package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/NU394-s2025TTh/BugSnacks/app/model"
	"github.com/NU394-s2025TTh/BugSnacks/app/repo"
	"github.com/NU394-s2025TTh/BugSnacks/app/service"
	"github.com/NU394-s2025TTh/BugSnacks/helper"
)

func SetupRoutes(app *fiber.App, store repo.Store, log *zap.Logger) {
	api := app.Group("/api")

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("BugSnacks API")
	})
	api.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("BugSnacks API")
	})

	idParam := helper.Params("id")

	bugReports := api.Group("/bug-reports")
	bugReportService := service.NewBugReportService(store, log)
	bugReports.Get("/", bugReportService.Hello)
	bugReports.Post("/",
		helper.ValidateRequest(log, helper.Checks{Body: helper.Body[model.CreateBugReportRequest]()}),
		bugReportService.Create)
	bugReports.Get("/:id",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		bugReportService.Get)
	bugReports.Patch("/:id",
		helper.ValidateRequest(log, helper.Checks{Body: helper.Body[model.UpdateBugReportRequest](), Params: idParam}),
		bugReportService.Update)
	bugReports.Delete("/:id",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		bugReportService.Delete)

	projects := api.Group("/projects")
	projectService := service.NewProjectService(store, log)
	projects.Get("/", projectService.Hello)
	projects.Post("/",
		helper.ValidateRequest(log, helper.Checks{Body: helper.Body[model.CreateProjectRequest]()}),
		projectService.Create)
	projects.Get("/campus/:campusId",
		helper.ValidateRequest(log, helper.Checks{Params: helper.Params("campusId")}),
		projectService.ByCampus)
	projects.Get("/:id/requests",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		projectService.TestRequests)
	projects.Get("/:id",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		projectService.Get)
	projects.Patch("/:id",
		helper.ValidateRequest(log, helper.Checks{Body: helper.Body[model.UpdateProjectRequest](), Params: idParam}),
		projectService.Update)
	projects.Delete("/:id",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		projectService.Delete)

	testRequests := api.Group("/test-requests")
	testRequestService := service.NewTestRequestService(store, log)
	testRequests.Get("/", testRequestService.Hello)
	testRequests.Post("/",
		helper.ValidateRequest(log, helper.Checks{Body: helper.Body[model.CreateTestRequestRequest]()}),
		testRequestService.Create)
	testRequests.Get("/:id/bugs",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		testRequestService.Bugs)
	testRequests.Get("/:id",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		testRequestService.Get)
	testRequests.Patch("/:id",
		helper.ValidateRequest(log, helper.Checks{Body: helper.Body[model.UpdateTestRequestRequest](), Params: idParam}),
		testRequestService.Update)
	testRequests.Delete("/:id",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		testRequestService.Delete)

	users := api.Group("/users")
	userService := service.NewUserService(store, log)
	users.Get("/", userService.Hello)
	users.Post("/",
		helper.ValidateRequest(log, helper.Checks{Body: helper.Body[model.CreateUserRequest]()}),
		userService.Create)
	users.Get("/:id/projects",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		userService.Projects)
	users.Get("/:id/bugReports",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		userService.BugReports)
	users.Get("/:id",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		userService.Get)
	users.Patch("/:id",
		helper.ValidateRequest(log, helper.Checks{Body: helper.Body[model.UpdateUserRequest](), Params: idParam}),
		userService.Update)
	users.Delete("/:id",
		helper.ValidateRequest(log, helper.Checks{Params: idParam}),
		userService.Delete)

	campuses := api.Group("/campuses")
	campusService := service.NewCampusService()
	campuses.Get("/", campusService.List)
	campuses.Get("/:campusId/rewards",
		helper.ValidateRequest(log, helper.Checks{Params: helper.Params("campusId")}),
		campusService.Rewards)
	campuses.Get("/:campusId",
		helper.ValidateRequest(log, helper.Checks{Params: helper.Params("campusId")}),
		campusService.DiningOptions)
}
