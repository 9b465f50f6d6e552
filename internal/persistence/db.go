package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionRecord is the table row backing one collection
type CollectionRecord struct {
	Name      string    `gorm:"primaryKey;type:varchar(100)"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName pins the table name
func (CollectionRecord) TableName() string {
	return "collections"
}

// DBGateway keeps collections as rows of a relational table
type DBGateway struct {
	db *gorm.DB
}

// NewDBGateway migrates the collections table and returns a gateway over db
func NewDBGateway(db *gorm.DB) (*DBGateway, error) {
	if err := db.AutoMigrate(&CollectionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate collections table: %w", err)
	}
	return &DBGateway{db: db}, nil
}

// Write upserts the row in a single statement
func (g *DBGateway) Write(ctx context.Context, name string, data []byte) error {
	rec := CollectionRecord{Name: name, Payload: data}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
}

func (g *DBGateway) Read(ctx context.Context, name string) ([]byte, error) {
	var rec CollectionRecord
	err := g.db.WithContext(ctx).Where("name = ?", name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return rec.Payload, nil
}

func (g *DBGateway) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&CollectionRecord{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (g *DBGateway) Delete(ctx context.Context, name string) error {
	return g.db.WithContext(ctx).Where("name = ?", name).Delete(&CollectionRecord{}).Error
}

func (g *DBGateway) Stat(ctx context.Context, name string) (Info, error) {
	var rec CollectionRecord
	err := g.db.WithContext(ctx).Where("name = ?", name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Info{Name: name}, nil
	}
	if err != nil {
		return Info{}, err
	}
	return Info{Name: name, Exists: true, Size: int64(len(rec.Payload)), ModTime: rec.UpdatedAt}, nil
}
