package controllers

import (
	"errors"
	"net/http"

	"widgetbrain/middleware"
	"widgetbrain/models"
	"widgetbrain/training"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// POST * {widgetId, nuevoContenido, fuente}
func (ctl *ContextController) AppendContext(c *gin.Context) {
	var req models.AppendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			RespondError(c, training.MsgMissingFields, http.StatusBadRequest)
			return
		}
		RespondError(c, "Cuerpo JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, err := ctl.appender.Append(c.Request.Context(), req)
	if err != nil {
		ctl.respondAppendError(c, req, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"message": out.Message,
		"fuente":  out.Source,
	})
}

func (ctl *ContextController) respondAppendError(c *gin.Context, req models.AppendRequest, err error) {
	switch training.KindOf(err) {
	case training.KindValidation:
		RespondError(c, err.Error(), http.StatusBadRequest)
	case training.KindNotFound:
		RespondError(c, err.Error(), http.StatusNotFound)
	default:
		fields := []interface{}{"widget_id", req.WidgetID, "error", err}
		if ids := middleware.GetRequestIDs(c.Request.Context()); ids != nil {
			fields = append(fields, "request_id", ids.RequestID)
		}
		ctl.log.Error("Append failed", fields...)
		RespondError(c, err.Error(), http.StatusInternalServerError)
	}
}
