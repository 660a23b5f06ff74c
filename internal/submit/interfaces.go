package submit

import (
	"github.com/ytget/idea-submitter/internal/model"
)

// Submitter defines the interface for the submission service. A Submitter is
// bound to one set of credentials for its whole lifetime.
type Submitter interface {
	SetUpdateCallback(func(model.Submission))
	Submit(content string) (model.Submission, error)
	GetSubmission(id string) (model.Submission, bool)
	GetAllSubmissions() []model.Submission
	Cancel(id string) error
	SetMaxParallel(max int)

	// Shutdown cancels queued and in-flight submissions and rejects new ones
	Shutdown()
}

// Reporter receives submission outcomes for the console log.
type Reporter interface {
	Submitted(content string)
	Result(result *model.CardCreationResult, err error)
	Cancelled(id string)
}
