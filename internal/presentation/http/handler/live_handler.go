package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/mkulima/shamba-api/internal/application/service"
	"github.com/mkulima/shamba-api/internal/live"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/response"
)

// LiveHandler streams owner-scoped collection snapshots over SSE. An
// initial snapshot is sent on connect, then a fresh one after every
// mutation notification from the hub.
type LiveHandler struct {
	hub            *live.Hub
	saleService    *service.SaleService
	expenseService *service.ExpenseService
	debtService    *service.DebtService
	workerService  *service.WorkerService
	taskService    *service.TaskService
	topicService   *service.TopicService
}

// NewLiveHandler creates a new live feed handler
func NewLiveHandler(
	hub *live.Hub,
	saleService *service.SaleService,
	expenseService *service.ExpenseService,
	debtService *service.DebtService,
	workerService *service.WorkerService,
	taskService *service.TaskService,
	topicService *service.TopicService,
) *LiveHandler {
	return &LiveHandler{
		hub:            hub,
		saleService:    saleService,
		expenseService: expenseService,
		debtService:    debtService,
		workerService:  workerService,
		taskService:    taskService,
		topicService:   topicService,
	}
}

// snapshot fetches the full current set for one collection
func (h *LiveHandler) snapshot(ctx context.Context, collection string) (interface{}, error) {
	switch collection {
	case live.CollectionSales:
		return h.saleService.ListAllSales(ctx)
	case live.CollectionExpenses:
		return h.expenseService.ListAllExpenses(ctx)
	case live.CollectionDebts:
		return h.debtService.ListAllDebts(ctx)
	case live.CollectionWorkers:
		return h.workerService.ListAllWorkers(ctx)
	case live.CollectionTasks:
		return h.taskService.ListAllTasks(ctx)
	case live.CollectionTopics:
		return h.topicService.ListAllTopics(ctx)
	}
	return nil, nil
}

// Stream handles GET /live/:collection as a server-sent event stream
func (h *LiveHandler) Stream(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	collection := c.Param("collection")
	if !live.KnownCollection(collection) {
		response.BadRequest(c, "Unknown collection")
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ticks, cancel := h.hub.Subscribe(*userID, collection)
	defer cancel()

	ctx := c.Request.Context()

	// Initial snapshot, then one per change notification
	h.send(c, collection)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			h.send(c, collection)
		}
	}
}

// send writes one snapshot event; query failures go out as error events
// instead of dropping the stream
func (h *LiveHandler) send(c *gin.Context, collection string) {
	data, err := h.snapshot(c.Request.Context(), collection)
	if err != nil {
		c.SSEvent("error", gin.H{"message": "Failed to load " + collection})
		c.Writer.Flush()
		return
	}

	c.SSEvent("snapshot", data)
	c.Writer.Flush()
}
