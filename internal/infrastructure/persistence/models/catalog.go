package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/nutritrack/backend/internal/domain/catalog"
)

// FoodModel maps the foods table. Nutrition columns are per 100g.
type FoodModel struct {
	AggregateModel
	Name              string              `gorm:"type:varchar(100);not null;index"`
	Brand             string              `gorm:"type:varchar(50)"`
	Category          catalog.Category    `gorm:"type:varchar(30);not null;index"`
	ServingSize       string              `gorm:"type:varchar(20);not null"`
	ServingUnit       catalog.ServingUnit `gorm:"type:varchar(10);not null;default:'g'"`
	Calories          float64             `gorm:"not null"`
	Protein           float64             `gorm:"not null"`
	Carbs             float64             `gorm:"not null"`
	Fat               float64             `gorm:"not null"`
	Fiber             float64             `gorm:"not null;default:0"`
	Sugar             float64             `gorm:"not null;default:0"`
	Sodium            float64             `gorm:"not null;default:0"`
	Cholesterol       float64             `gorm:"not null;default:0"`
	SaturatedFat      float64             `gorm:"not null;default:0"`
	TransFat          float64             `gorm:"not null;default:0"`
	IsPublic          bool                `gorm:"not null;default:true"`
	Barcode           *string             `gorm:"type:varchar(20);uniqueIndex"`
	Description       string              `gorm:"type:text"`
	Tags              pq.StringArray      `gorm:"type:text[]"`
	UsageCount        int64               `gorm:"not null;default:0;index"`
	IsVerified        bool                `gorm:"not null;default:false"`
	VerifiedBy        *uuid.UUID          `gorm:"type:uuid"`
	VerifiedAt        *time.Time
	VerificationNotes string    `gorm:"type:varchar(500)"`
	AddedBy           uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (FoodModel) TableName() string {
	return "foods"
}

// FoodModelFromDomain converts a domain food. An empty barcode is stored as
// NULL so the unique index only covers foods that carry one.
func FoodModelFromDomain(f *catalog.Food) *FoodModel {
	m := &FoodModel{
		Name:              f.Name,
		Brand:             f.Brand,
		Category:          f.Category,
		ServingSize:       f.ServingSize,
		ServingUnit:       f.ServingUnit,
		Calories:          f.Nutrition.Calories,
		Protein:           f.Nutrition.Protein,
		Carbs:             f.Nutrition.Carbs,
		Fat:               f.Nutrition.Fat,
		Fiber:             f.Nutrition.Fiber,
		Sugar:             f.Nutrition.Sugar,
		Sodium:            f.Nutrition.Sodium,
		Cholesterol:       f.Nutrition.Cholesterol,
		SaturatedFat:      f.Nutrition.SaturatedFat,
		TransFat:          f.Nutrition.TransFat,
		IsPublic:          f.IsPublic,
		Description:       f.Description,
		Tags:              pq.StringArray(f.Tags),
		UsageCount:        f.UsageCount,
		IsVerified:        f.Verification.Verified,
		VerifiedBy:        f.Verification.VerifiedBy,
		VerifiedAt:        f.Verification.VerifiedAt,
		VerificationNotes: f.Verification.Notes,
		AddedBy:           f.AddedBy,
	}
	if f.Barcode != "" {
		barcode := f.Barcode
		m.Barcode = &barcode
	}
	if m.Tags == nil {
		m.Tags = pq.StringArray{}
	}
	m.fromAggregate(f.BaseAggregateRoot)
	return m
}

// ToDomain converts back to a domain food
func (m *FoodModel) ToDomain() *catalog.Food {
	f := &catalog.Food{
		BaseAggregateRoot: m.toAggregate(),
		Name:              m.Name,
		Brand:             m.Brand,
		Category:          m.Category,
		ServingSize:       m.ServingSize,
		ServingUnit:       m.ServingUnit,
		Nutrition: catalog.NutritionFacts{
			Calories:     m.Calories,
			Protein:      m.Protein,
			Carbs:        m.Carbs,
			Fat:          m.Fat,
			Fiber:        m.Fiber,
			Sugar:        m.Sugar,
			Sodium:       m.Sodium,
			Cholesterol:  m.Cholesterol,
			SaturatedFat: m.SaturatedFat,
			TransFat:     m.TransFat,
		},
		IsPublic:    m.IsPublic,
		Description: m.Description,
		Tags:        []string(m.Tags),
		UsageCount:  m.UsageCount,
		Verification: catalog.Verification{
			Verified:   m.IsVerified,
			VerifiedBy: m.VerifiedBy,
			VerifiedAt: m.VerifiedAt,
			Notes:      m.VerificationNotes,
		},
		AddedBy: m.AddedBy,
	}
	if m.Barcode != nil {
		f.Barcode = *m.Barcode
	}
	if f.Tags == nil {
		f.Tags = []string{}
	}
	return f
}
