package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordSlotModel is one row of record_slots. The table is created by cmd/migrate.
type RecordSlotModel struct {
	Name      string    `gorm:"primaryKey;type:varchar(191)"`
	Payload   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (RecordSlotModel) TableName() string {
	return "record_slots"
}

type PostgresBackend struct {
	db *gorm.DB
}

func NewPostgresBackend(db *gorm.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (p *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var row RecordSlotModel
	err := p.db.WithContext(ctx).Where("name = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(row.Payload), nil
}

func (p *PostgresBackend) Put(ctx context.Context, key string, data []byte) error {
	row := RecordSlotModel{
		Name:      key,
		Payload:   string(data),
		UpdatedAt: time.Now(),
	}
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}

func (p *PostgresBackend) Delete(ctx context.Context, key string) error {
	return p.db.WithContext(ctx).Where("name = ?", key).Delete(&RecordSlotModel{}).Error
}

// Close leaves the shared connection pool open; its owner closes it.
func (p *PostgresBackend) Close() error {
	return nil
}
