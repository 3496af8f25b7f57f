package studio

import "time"

// Render job statuses. There is no real model behind the studio yet, so
// jobs complete synchronously with a placeholder render.
const (
	StatusDone = "done"
)

// Render styles offered by the sketch-to-render studio.
const (
	StyleModern       = "modern"
	StyleClassic      = "classic"
	StyleIndustrial   = "industrial"
	StyleScandinavian = "scandinavian"
)

func IsValidStyle(s string) bool {
	switch s {
	case StyleModern, StyleClassic, StyleIndustrial, StyleScandinavian:
		return true
	}
	return false
}

type RenderJob struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	UserID    uint   `gorm:"not null;index:idx_render_jobs_user_id"`
	Style     string `gorm:"not null"`
	SketchURL string `gorm:"column:sketch_url;not null"`
	Status    string `gorm:"not null"`
	ResultURL string `gorm:"column:result_url"`
	CreatedAt time.Time
}
