package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is a user's public-facing professional record. Skills, social
// links and the experience/education lists are stored as JSON columns, so
// every sub-list mutation is a read-modify-write of the whole row. The
// unique index on UserID is what keeps concurrent first submissions from
// creating two profiles for the same user.
type Profile struct {
	ID             uuid.UUID    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID    `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Company        string       `gorm:"size:255" json:"company"`
	Website        string       `gorm:"size:255" json:"website"`
	Location       string       `gorm:"size:255" json:"location"`
	Status         string       `gorm:"size:255;not null" json:"status"`
	Skills         []string     `gorm:"serializer:json" json:"skills"`
	Bio            string       `gorm:"type:text" json:"bio"`
	GithubUsername string       `gorm:"size:255" json:"github_username"`
	Social         SocialLinks  `gorm:"serializer:json" json:"social"`
	Experience     []Experience `gorm:"serializer:json" json:"experience"`
	Education      []Education  `gorm:"serializer:json" json:"education"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// SocialLinks is sparse: platforms without a URL are omitted entirely.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience entries are kept most-recent-first; new entries go to the head.
type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education mirrors the Experience contract.
type Education struct {
	ID          uuid.UUID  `json:"id"`
	School      string     `json:"school"`
	Degree      string     `json:"degree"`
	Major       string     `json:"major"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}
