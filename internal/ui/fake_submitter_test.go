package ui

import (
	"errors"
	"sync"

	"github.com/ytget/idea-submitter/internal/model"
)

// fakeSubmitter records submitted content without sending anything
type fakeSubmitter struct {
	mu          sync.Mutex
	submitted   []string
	err         error
	callback    func(model.Submission)
	maxParallel int
	shutdown    bool
}

func (f *fakeSubmitter) SetUpdateCallback(callback func(model.Submission)) {
	f.callback = callback
}

func (f *fakeSubmitter) Submit(content string) (model.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, content)
	if f.err != nil {
		return model.Submission{}, f.err
	}
	return model.Submission{ID: "submission-1", Content: content, Status: model.SubmissionStatusPending}, nil
}

func (f *fakeSubmitter) GetSubmission(id string) (model.Submission, bool) {
	return model.Submission{}, false
}

func (f *fakeSubmitter) GetAllSubmissions() []model.Submission {
	return nil
}

func (f *fakeSubmitter) Cancel(id string) error {
	return errors.New("not supported")
}

func (f *fakeSubmitter) SetMaxParallel(max int) {
	f.maxParallel = max
}

func (f *fakeSubmitter) Shutdown() {
	f.shutdown = true
}

func (f *fakeSubmitter) Submitted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.submitted...)
}
