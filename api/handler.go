package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/pramath6095/heuristic-ai-cfs/config"
	"github.com/pramath6095/heuristic-ai-cfs/internal/sched"
)

type SchedulerHandler struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandler(config *config.SchedulerConfig) *SchedulerHandler {
	return &SchedulerHandler{config: config}
}

// Register mounts one endpoint per algorithm plus /all.
func (h *SchedulerHandler) Register(app *fiber.App) {
	v1 := app.Group("/api/v1")
	v1.Post("/fcfs", h.schedule(sched.FCFS{}))
	v1.Post("/sjf", h.schedule(sched.SJF{}))
	v1.Post("/srtf", h.schedule(sched.SJF{Preemptive: true}))
	v1.Post("/priority", h.schedule(sched.PriorityScheduler{}))
	v1.Post("/priority-preemptive", h.schedule(sched.PriorityScheduler{Preemptive: true}))
	v1.Post("/rr", h.schedule(sched.RoundRobin{Quantum: h.config.RoundRobinQuantum}))
	v1.Post("/cfs", h.schedule(sched.HeuristicCFS{Quantum: h.config.CFSQuantum}))
	v1.Post("/all", h.all)
}

func (h *SchedulerHandler) schedule(scheduler sched.Scheduler) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var request ScheduleRequest
		if err := ctx.BodyParser(&request); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request format",
			})
		}
		result, err := scheduler.Schedule(toProcesses(request))
		if err != nil {
			if errors.Is(err, sched.ErrInvalidProcessSpec) {
				return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
		}
		log.WithFields(log.Fields{
			"algorithm": scheduler.Name(),
			"processes": len(request.Processes),
		}).Info("scheduled")
		return ctx.JSON(toResponse(result))
	}
}

func (h *SchedulerHandler) all(ctx *fiber.Ctx) error {
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	results, err := sched.RunAll(toProcesses(request), h.config.RoundRobinQuantum, h.config.CFSQuantum)
	if err != nil {
		if errors.Is(err, sched.ErrInvalidProcessSpec) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}
	responses := make([]ScheduleResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, toResponse(r))
	}
	return ctx.JSON(responses)
}

// Serve runs the scheduling API until the listener fails.
func Serve(cfg *config.SchedulerConfig) error {
	app := fiber.New()
	NewSchedulerHandler(cfg).Register(app)
	log.WithField("port", cfg.Port).Info("scheduler api listening")
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}
