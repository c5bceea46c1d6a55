package model

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Price       float64                     `json:"price"`
	Category    string                      `gorm:"index" json:"category"`
	ImageURL    string                      `json:"image_url"`
	Sizes       datatypes.JSONSlice[string] `json:"sizes"`
	Colors      datatypes.JSONSlice[string] `json:"colors"`
	Stock       int                         `json:"stock"`
	InStock     bool                        `gorm:"default:true" json:"in_stock"`
	Featured    bool                        `gorm:"default:false;index" json:"featured"`
	CreatedAt   time.Time                   `json:"created_at"`
}
