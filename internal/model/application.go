package model

import "time"

// Application is one archived job application.
type Application struct {
	ID             string    // uuid assigned when archived
	Company        string    // company name
	Role           string    // role applied for
	Status         string    // free-form status, "Applied" by default
	JobDescription string    // pasted job description
	Folder         string    // archive folder holding the resume and letter copies
	CreatedAt      time.Time // our clock
}

// CoverLetter holds the editable cover letter fields.
type CoverLetter struct {
	Company  string
	Role     string
	Greeting string
	Body     string
}

// ApplicationStore persists the application log.
type ApplicationStore interface {
	Record(app Application) error
	List() ([]Application, error)
}

// ApplicationFilter decides whether an application matches a history query.
type ApplicationFilter interface {
	Match(app Application) bool
}
