package domain

import "errors"

var (
	ErrEmailTaken         = errors.New("email is already in use")
	ErrUsernameTaken      = errors.New("username is already in use")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrJobNotFound  = errors.New("job not found")
	ErrNotJobPoster = errors.New("only the job poster may perform this action")

	ErrApplicationNotFound  = errors.New("job application not found")
	ErrOwnJobApplication    = errors.New("applicant cannot apply to their own job")
	ErrDuplicateApplication = errors.New("application already submitted for this job")
	ErrCoverLetterRequired  = errors.New("cover letter is required")
	ErrApplicationForbidden = errors.New("not authorized to view this application")
)
