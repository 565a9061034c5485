package domain

import "time"

// Job is a posting created by a user. Deleting a job cascades to its
// applications at the database level.
type Job struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:100;not null"`
	Company     string  `gorm:"size:100;not null"`
	Location    string  `gorm:"size:100;not null"`
	Description string  `gorm:"type:text;not null"`
	Category    *string `gorm:"size:50"`
	PostedByID  uint    `gorm:"not null;index"`
	PostedBy    User    `gorm:"foreignKey:PostedByID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PosterView identifies a user embedded inside job and application views.
type PosterView struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}

// JobView is the client-facing representation of a job posting.
type JobView struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Category    *string    `json:"category"`
	PostedBy    PosterView `json:"posted_by"`
	DateCreated string     `json:"date_created"`
}

// View returns the client-facing representation of the job.
// PostedBy must be loaded.
func (j *Job) View() JobView {
	return JobView{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Description: j.Description,
		Category:    j.Category,
		PostedBy: PosterView{
			ID:       j.PostedByID,
			FullName: j.PostedBy.FullName(),
		},
		DateCreated: j.CreatedAt.Format(viewTimeLayout),
	}
}
