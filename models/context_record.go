package models

import "strings"

// ContextRecord representa a linha de um widget: o contexto de treinamento acumulado.
// A tabela é definida em configuração (default "360ia_db"), por isso não há TableName().
type ContextRecord struct {
	WidgetID string  `gorm:"column:widget_id;primary_key" json:"widget_id"`
	Context  *string `gorm:"column:contexto_entrenamiento;type:text" json:"context"`
}

// Current returns the stored context, with NULL read as "".
func (r ContextRecord) Current() string {
	if r.Context == nil {
		return ""
	}
	return *r.Context
}

// AppendRequest é o corpo do POST. Os nomes dos campos JSON são fixos por contrato.
type AppendRequest struct {
	WidgetID   string `json:"widgetId" binding:"required"`
	NewContent string `json:"nuevoContenido" binding:"required"`
	Source     string `json:"fuente"`
}

// Normalize trims surrounding whitespace from every field.
func (r AppendRequest) Normalize() AppendRequest {
	return AppendRequest{
		WidgetID:   strings.TrimSpace(r.WidgetID),
		NewContent: strings.TrimSpace(r.NewContent),
		Source:     strings.TrimSpace(r.Source),
	}
}

func (r AppendRequest) MissingFields() string {
	if strings.TrimSpace(r.WidgetID) == "" {
		return "widgetId"
	} else if strings.TrimSpace(r.NewContent) == "" {
		return "nuevoContenido"
	}
	return ""
}
