package controllers

import (
	"context"
	"net/http"

	"widgetbrain/logger"
	"widgetbrain/models"
	"widgetbrain/training"

	"github.com/gin-gonic/gin"
)

const MsgMethodNotAllowed = "Método no permitido"

type ContextAppender interface {
	Append(ctx context.Context, req models.AppendRequest) (training.Outcome, error)
}

// ContextController serve o único endpoint do serviço: POST com o novo conhecimento.
type ContextController struct {
	appender ContextAppender
	log      *logger.Logger
}

func NewContextController(appender ContextAppender, log *logger.Logger) *ContextController {
	if log == nil {
		log = logger.Nop()
	}
	return &ContextController{appender: appender, log: log.With("component", "ContextController")}
}

// Handle gates by method. Behind router.Initialize the CORS middleware answers OPTIONS first;
// mounted on its own the handler still answers the preflight with 204.
func (ctl *ContextController) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodPost:
		ctl.AppendContext(c)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.String(http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	}
}
