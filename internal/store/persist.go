package store

import (
	"context"

	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"

	"go.uber.org/zap"
)

func loadCollection[T any](ctx context.Context, gw persistence.Gateway, log *zap.Logger, name string) ([]T, error) {
	records, err := persistence.Load[T](ctx, gw, name)
	if err != nil {
		log.Error("Failed to load collection", zap.String("collection", name), zap.Error(err))
		return nil, err
	}
	log.Info("Loaded collection", zap.String("collection", name), zap.Int("count", len(records)))
	return records, nil
}

func saveCollection[T any](ctx context.Context, gw persistence.Gateway, log *zap.Logger, name string, records []T) error {
	if err := persistence.Save(ctx, gw, name, records); err != nil {
		log.Warn("Failed to save collection", zap.String("collection", name), zap.Error(err))
		return &IoError{Op: "save", Name: name, Err: err}
	}
	log.Debug("Saved collection", zap.String("collection", name), zap.Int("count", len(records)))
	return nil
}
