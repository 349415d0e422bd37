// Package storage is a small document store over gorm: schemaless JSON
// records addressed by collection and id.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant-foh/models"
)

var ErrNotFound = errors.New("document not found")

type Documents struct {
	db *gorm.DB
}

func NewDocuments(db *gorm.DB) *Documents {
	return &Documents{db: db}
}

// Create stores data under a generated id and returns it.
func (d *Documents) Create(ctx context.Context, collection string, data any) (string, error) {
	id := uuid.NewString()
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	doc := models.Document{Collection: collection, ID: id, Data: datatypes.JSON(raw)}
	if err := d.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return "", fmt.Errorf("create %s document: %w", collection, err)
	}
	return id, nil
}

// Put creates or replaces the document with the given id.
func (d *Documents) Put(ctx context.Context, collection, id string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	doc := models.Document{Collection: collection, ID: id, Data: datatypes.JSON(raw)}
	err = d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (d *Documents) Read(ctx context.Context, collection, id string) (models.Document, error) {
	var doc models.Document
	err := d.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, fmt.Errorf("read %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// ReadInto decodes the document's data into out.
func (d *Documents) ReadInto(ctx context.Context, collection, id string, out any) error {
	doc, err := d.Read(ctx, collection, id)
	if err != nil {
		return err
	}
	return json.Unmarshal(doc.Data, out)
}

func (d *Documents) ReadAll(ctx context.Context, collection string) ([]models.Document, error) {
	var docs []models.Document
	if err := d.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at asc").
		Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	return docs, nil
}

// Update merges fields into the top level of an existing JSON object document.
func (d *Documents) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doc models.Document
		err := tx.Where("collection = ? AND id = ?", collection, id).First(&doc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("read %s/%s: %w", collection, id, err)
		}

		current := map[string]any{}
		if len(doc.Data) > 0 {
			if err := json.Unmarshal(doc.Data, &current); err != nil {
				return fmt.Errorf("decode %s/%s: %w", collection, id, err)
			}
		}
		for k, v := range fields {
			current[k] = v
		}
		raw, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		return tx.Model(&doc).Update("data", datatypes.JSON(raw)).Error
	})
}

func (d *Documents) Delete(ctx context.Context, collection, id string) error {
	res := d.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&models.Document{})
	if res.Error != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
