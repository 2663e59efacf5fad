package repository

import (
	"context"

	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the CRUD every settings table shares.
type Store[T any] struct {
	db    *gorm.DB
	order string
}

func newStore[T any](db *gorm.DB, order string) Store[T] {
	return Store[T]{db: db, order: order}
}

func (s Store[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	err := s.db.WithContext(ctx).Order(s.order).Find(&rows).Error
	return rows, util.TranslateDBError(err)
}

func (s Store[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, util.TranslateDBError(err)
	}
	return &row, nil
}

func (s Store[T]) Create(ctx context.Context, row *T) error {
	return util.TranslateDBError(s.db.WithContext(ctx).Create(row).Error)
}

func (s Store[T]) Update(ctx context.Context, row *T) error {
	return util.TranslateDBError(s.db.WithContext(ctx).Save(row).Error)
}

func (s Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return util.TranslateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// Seed inserts rows whose key column is not taken yet; existing rows keep
// whatever administrators changed.
func (s Store[T]) Seed(ctx context.Context, key string, rows []T) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := seedRows(s.db.WithContext(ctx), key, rows)
	return res.RowsAffected, util.TranslateDBError(res.Error)
}

func seedRows[T any](tx *gorm.DB, key string, rows []T) *gorm.DB {
	return tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: key}}, DoNothing: true}).
		Create(&rows)
}
