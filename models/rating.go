package models

import "time"

type Rating struct {
	RatingID    uint      `gorm:"primaryKey;autoIncrement;column:rating_id" json:"rating_id"`
	TransaksiID uint      `gorm:"not null;uniqueIndex:idx_rating_transaksi_reviewer" json:"transaksi_id"`
	ReviewerID  uint      `gorm:"not null;uniqueIndex:idx_rating_transaksi_reviewer" json:"reviewer_id"`
	ReviewedID  uint      `gorm:"not null;index" json:"reviewed_id"`
	Nilai       int       `gorm:"not null" json:"nilai"`
	Komentar    string    `gorm:"type:text" json:"komentar"`
	Tanggal     time.Time `gorm:"autoCreateTime" json:"tanggal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Transaksi *Transaksi `gorm:"foreignKey:TransaksiID;references:TransaksiID" json:"transaksi,omitempty"`
	Reviewer  *User      `gorm:"foreignKey:ReviewerID;references:UserID" json:"reviewer,omitempty"`
	Reviewed  *User      `gorm:"foreignKey:ReviewedID;references:UserID" json:"reviewed,omitempty"`
}

func (Rating) TableName() string {
	return "rating"
}

// RatingStats adalah agregat rating untuk satu user
type RatingStats struct {
	TotalRatings  int64            `json:"total_ratings"`
	AverageRating string           `json:"average_rating"`
	Distribution  map[string]int64 `json:"ratings_distribution"`
}
