package db

import (
	"context"
	"fmt"

	"widgetbrain/models"
	"widgetbrain/training"

	"github.com/jinzhu/gorm"
)

const contextColumn = "contexto_entrenamiento"

// ContextStore reads and writes the training context column of one configurable table.
type ContextStore struct {
	db    *gorm.DB
	table string
}

var _ training.Store = (*ContextStore)(nil)

func NewContextStore(database *gorm.DB, table string) *ContextStore {
	return &ContextStore{db: database, table: table}
}

func (s *ContextStore) GetContext(ctx context.Context, widgetID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var rec models.ContextRecord
	err := s.db.Table(s.table).
		Select("widget_id, "+contextColumn).
		Where("widget_id = ?", widgetID).
		Take(&rec).Error
	if gorm.IsRecordNotFoundError(err) {
		return "", training.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select %s: %w", s.table, err)
	}
	return rec.Current(), nil
}

func (s *ContextStore) SetContext(ctx context.Context, widgetID string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := s.db.Table(s.table).
		Where("widget_id = ?", widgetID).
		UpdateColumn(contextColumn, value)
	if res.Error != nil {
		return fmt.Errorf("update %s: %w", s.table, res.Error)
	}
	if res.RowsAffected == 0 {
		return training.ErrNotFound
	}
	return nil
}
