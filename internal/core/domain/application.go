package domain

import "time"

// JobApplication records one user's interest in one job. The composite
// unique index on (job_id, applicant_id) makes a second application from
// the same user fail at the store rather than racing the pre-check.
type JobApplication struct {
	ID          uint   `gorm:"primaryKey"`
	JobID       uint   `gorm:"not null;uniqueIndex:idx_job_applicant"`
	Job         Job    `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	ApplicantID uint   `gorm:"not null;uniqueIndex:idx_job_applicant"`
	Applicant   User   `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
	CoverLetter string `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JobRefView is the job summary embedded in an application view.
type JobRefView struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
}

// ApplicationView is the client-facing representation of an application.
type ApplicationView struct {
	ID          uint       `json:"id"`
	Job         JobRefView `json:"job"`
	Applicant   PosterView `json:"applicant"`
	CoverLetter string     `json:"cover_letter"`
	DateCreated string     `json:"date_created"`
}

// View returns the client-facing representation of the application.
// Job and Applicant must be loaded.
func (a *JobApplication) View() ApplicationView {
	return ApplicationView{
		ID: a.ID,
		Job: JobRefView{
			Title:    a.Job.Title,
			Company:  a.Job.Company,
			Location: a.Job.Location,
		},
		Applicant: PosterView{
			ID:       a.ApplicantID,
			FullName: a.Applicant.FullName(),
		},
		CoverLetter: a.CoverLetter,
		DateCreated: a.CreatedAt.Format(viewTimeLayout),
	}
}
