package domain

import "time"

type Category struct {
	ID          ID
	Name        string
	Slug        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCategory(name, slug, description string, isActive bool) *Category {
	return &Category{
		Name:        name,
		Slug:        slug,
		Description: description,
		IsActive:    isActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
