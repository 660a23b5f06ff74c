package submit

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/idea-submitter/internal/model"
	"github.com/ytget/idea-submitter/internal/trello"
)

// fakeCreator records calls and answers through respond
type fakeCreator struct {
	mu      sync.Mutex
	calls   []string
	creds   []model.Credentials
	respond func(ctx context.Context, content string) (*model.CardCreationResult, error)
}

func (f *fakeCreator) CreateCard(ctx context.Context, creds model.Credentials, idea model.IdeaSubmission) (*model.CardCreationResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, idea.Content)
	f.creds = append(f.creds, creds)
	f.mu.Unlock()

	if f.respond != nil {
		return f.respond(ctx, idea.Content)
	}
	return &model.CardCreationResult{
		Success:    true,
		Outcome:    model.OutcomeCreated,
		StatusCode: 200,
		Card:       model.Card{ID: "card-" + idea.Content, ShortURL: "https://trello.com/c/" + idea.Content},
	}, nil
}

func (f *fakeCreator) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// fakeReporter records reporter calls as text lines
type fakeReporter struct {
	mu    sync.Mutex
	lines []string
}

func (r *fakeReporter) add(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

func (r *fakeReporter) Submitted(content string) { r.add("submitted:" + content) }
func (r *fakeReporter) Cancelled(id string)      { r.add("cancelled") }
func (r *fakeReporter) Result(result *model.CardCreationResult, err error) {
	if err != nil {
		r.add("error:" + err.Error())
		return
	}
	r.add("created")
}

func (r *fakeReporter) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

var testCreds = model.Credentials{APIKey: "key", Token: "token", ListID: "list"}

func newTestService(creator trello.CardCreator, maxParallel int) (*Service, *fakeReporter) {
	reporter := &fakeReporter{}
	return NewService(creator, testCreds, reporter, nil, maxParallel), reporter
}

func TestNewService(t *testing.T) {
	service, _ := newTestService(&fakeCreator{}, 0)

	if service.maxParallel != DefaultMaxParallel {
		t.Errorf("Expected maxParallel %d, got %d", DefaultMaxParallel, service.maxParallel)
	}
	if len(service.submissions) != 0 {
		t.Errorf("Expected no submissions, got %d", len(service.submissions))
	}
}

func TestSetMaxParallel_Clamps(t *testing.T) {
	service, _ := newTestService(&fakeCreator{}, 1)

	service.SetMaxParallel(15)
	if service.maxParallel != MaxParallelLimit {
		t.Errorf("Expected clamp to %d, got %d", MaxParallelLimit, service.maxParallel)
	}

	service.SetMaxParallel(-3)
	if service.maxParallel != DefaultMaxParallel {
		t.Errorf("Expected clamp to %d, got %d", DefaultMaxParallel, service.maxParallel)
	}
}

func TestSubmit_CreatesCard(t *testing.T) {
	creator := &fakeCreator{}
	service, reporter := newTestService(creator, 1)

	sub, err := service.Submit("Idea one")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(sub.ID, IDPrefix) {
		t.Errorf("Expected ID prefix %s, got %s", IDPrefix, sub.ID)
	}

	service.Wait()

	got, exists := service.GetSubmission(sub.ID)
	if !exists {
		t.Fatal("Expected submission to exist")
	}
	if got.Status != model.SubmissionStatusCreated {
		t.Errorf("Expected status Created, got %s", got.Status)
	}
	if got.CardID != "card-Idea one" || got.CardURL != "https://trello.com/c/Idea one" {
		t.Errorf("Unexpected card fields: %+v", got)
	}
	if got.StatusCode != 200 {
		t.Errorf("Expected status code 200, got %d", got.StatusCode)
	}

	if !cmp.Equal([]model.Credentials{testCreds}, creator.creds) {
		t.Error("Expected the injected credentials to be used")
	}

	want := []string{"submitted:Idea one", "created"}
	if !cmp.Equal(want, reporter.Lines()) {
		t.Error(cmp.Diff(want, reporter.Lines()))
	}
}

func TestSubmit_EmptyContentIsSent(t *testing.T) {
	creator := &fakeCreator{}
	service, _ := newTestService(creator, 1)

	if _, err := service.Submit(""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	service.Wait()

	if !cmp.Equal([]string{""}, creator.Calls()) {
		t.Errorf("Expected one call with empty content, got %q", creator.Calls())
	}
}

func TestSubmit_FailureKeepsServiceUsable(t *testing.T) {
	creator := &fakeCreator{
		respond: func(ctx context.Context, content string) (*model.CardCreationResult, error) {
			if content == "bad" {
				return &model.CardCreationResult{Outcome: model.OutcomeRemoteError, StatusCode: 401},
					&trello.RemoteError{StatusCode: 401, Body: "invalid key"}
			}
			return &model.CardCreationResult{Success: true, Outcome: model.OutcomeCreated, StatusCode: 200}, nil
		},
	}
	service, _ := newTestService(creator, 1)

	bad, _ := service.Submit("bad")
	good, _ := service.Submit("good")
	service.Wait()

	gotBad, _ := service.GetSubmission(bad.ID)
	if gotBad.Status != model.SubmissionStatusFailed {
		t.Errorf("Expected Failed, got %s", gotBad.Status)
	}
	if gotBad.StatusCode != 401 || !strings.Contains(gotBad.LastError, "invalid key") {
		t.Errorf("Expected status 401 and error text, got %+v", gotBad)
	}

	gotGood, _ := service.GetSubmission(good.ID)
	if gotGood.Status != model.SubmissionStatusCreated {
		t.Errorf("Expected Created after a failure, got %s", gotGood.Status)
	}
}

func TestSubmit_TransportFailure(t *testing.T) {
	creator := &fakeCreator{
		respond: func(ctx context.Context, content string) (*model.CardCreationResult, error) {
			return nil, &trello.TransportError{Err: errors.New("connection refused")}
		},
	}
	service, reporter := newTestService(creator, 1)

	sub, _ := service.Submit("idea")
	service.Wait()

	got, _ := service.GetSubmission(sub.ID)
	if got.Status != model.SubmissionStatusFailed {
		t.Errorf("Expected Failed, got %s", got.Status)
	}
	if got.StatusCode != 0 {
		t.Errorf("Expected no status code, got %d", got.StatusCode)
	}

	lines := reporter.Lines()
	if len(lines) != 2 || !strings.Contains(lines[1], "connection refused") {
		t.Errorf("Expected transport error to be reported, got %q", lines)
	}
}

func TestSubmit_SerializedAndFIFO(t *testing.T) {
	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0

	creator := &fakeCreator{
		respond: func(ctx context.Context, content string) (*model.CardCreationResult, error) {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return &model.CardCreationResult{Success: true, Outcome: model.OutcomeCreated, StatusCode: 200}, nil
		},
	}
	service, _ := newTestService(creator, 1)

	for _, content := range []string{"a", "b", "c", "d"} {
		if _, err := service.Submit(content); err != nil {
			t.Fatal(err)
		}
	}
	service.Wait()

	if maxInFlight != 1 {
		t.Errorf("Expected at most 1 request in flight, got %d", maxInFlight)
	}
	if want := []string{"a", "b", "c", "d"}; !cmp.Equal(want, creator.Calls()) {
		t.Error(cmp.Diff(want, creator.Calls()))
	}

	all := service.GetAllSubmissions()
	if len(all) != 4 {
		t.Fatalf("Expected 4 submissions, got %d", len(all))
	}
	for i, sub := range all {
		if sub.Content != []string{"a", "b", "c", "d"}[i] {
			t.Errorf("Submission %d out of order: %s", i, sub.Content)
		}
		if sub.Status != model.SubmissionStatusCreated {
			t.Errorf("Submission %d: expected Created, got %s", i, sub.Status)
		}
	}
}

func TestSubmit_ParallelBound(t *testing.T) {
	release := make(chan struct{})
	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0

	creator := &fakeCreator{
		respond: func(ctx context.Context, content string) (*model.CardCreationResult, error) {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			<-release

			mu.Lock()
			inFlight--
			mu.Unlock()
			return &model.CardCreationResult{Success: true, Outcome: model.OutcomeCreated, StatusCode: 200}, nil
		},
	}
	service, _ := newTestService(creator, 2)

	for _, content := range []string{"a", "b", "c"} {
		service.Submit(content)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	service.Wait()

	if maxInFlight != 2 {
		t.Errorf("Expected 2 requests in flight at most, got %d", maxInFlight)
	}
}

func TestCancel_InFlight(t *testing.T) {
	started := make(chan struct{})
	creator := &fakeCreator{
		respond: func(ctx context.Context, content string) (*model.CardCreationResult, error) {
			close(started)
			<-ctx.Done()
			return nil, &trello.TransportError{Err: ctx.Err()}
		},
	}
	service, reporter := newTestService(creator, 1)

	sub, _ := service.Submit("slow")
	<-started

	if err := service.Cancel(sub.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	service.Wait()

	got, _ := service.GetSubmission(sub.ID)
	if got.Status != model.SubmissionStatusCancelled {
		t.Errorf("Expected Cancelled, got %s", got.Status)
	}
	if lines := reporter.Lines(); lines[len(lines)-1] != "cancelled" {
		t.Errorf("Expected cancellation to be reported, got %q", lines)
	}

	if err := service.Cancel(sub.ID); err == nil {
		t.Error("Expected error cancelling a finished submission")
	}
}

func TestCancel_Pending(t *testing.T) {
	release := make(chan struct{})
	creator := &fakeCreator{
		respond: func(ctx context.Context, content string) (*model.CardCreationResult, error) {
			<-release
			return &model.CardCreationResult{Success: true, Outcome: model.OutcomeCreated, StatusCode: 200}, nil
		},
	}
	service, _ := newTestService(creator, 1)

	service.Submit("first")
	queued, _ := service.Submit("second")

	if err := service.Cancel(queued.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	close(release)
	service.Wait()

	got, _ := service.GetSubmission(queued.ID)
	if got.Status != model.SubmissionStatusCancelled {
		t.Errorf("Expected Cancelled, got %s", got.Status)
	}
	if !cmp.Equal([]string{"first"}, creator.Calls()) {
		t.Errorf("Cancelled submission should never be sent, calls: %q", creator.Calls())
	}
}

func TestCancel_NotFound(t *testing.T) {
	service, _ := newTestService(&fakeCreator{}, 1)

	if err := service.Cancel("missing"); err == nil {
		t.Error("Expected error for unknown submission")
	}
}

func TestShutdown(t *testing.T) {
	started := make(chan struct{})
	creator := &fakeCreator{
		respond: func(ctx context.Context, content string) (*model.CardCreationResult, error) {
			if content == "running" {
				close(started)
			}
			<-ctx.Done()
			return nil, &trello.TransportError{Err: ctx.Err()}
		},
	}
	service, _ := newTestService(creator, 1)

	running, _ := service.Submit("running")
	queued, _ := service.Submit("queued")
	<-started

	service.Shutdown()

	for _, id := range []string{running.ID, queued.ID} {
		got, _ := service.GetSubmission(id)
		if got.Status != model.SubmissionStatusCancelled {
			t.Errorf("Submission %s: expected Cancelled, got %s", got.Content, got.Status)
		}
	}

	if _, err := service.Submit("late"); !errors.Is(err, ErrShutdown) {
		t.Errorf("Expected ErrShutdown, got %v", err)
	}

	// second call is a no-op
	service.Shutdown()
}

func TestUpdateCallback(t *testing.T) {
	service, _ := newTestService(&fakeCreator{}, 1)

	var mu sync.Mutex
	var statuses []model.SubmissionStatus
	service.SetUpdateCallback(func(sub model.Submission) {
		mu.Lock()
		defer mu.Unlock()
		statuses = append(statuses, sub.Status)
	})

	service.Submit("idea")
	service.Wait()

	mu.Lock()
	defer mu.Unlock()
	want := []model.SubmissionStatus{
		model.SubmissionStatusPending,
		model.SubmissionStatusSending,
		model.SubmissionStatusCreated,
	}
	if !cmp.Equal(want, statuses) {
		t.Error(cmp.Diff(want, statuses))
	}
}

func TestGenerateSubmissionID(t *testing.T) {
	id1 := generateSubmissionID()
	id2 := generateSubmissionID()

	if id1 == id2 {
		t.Error("Expected different submission IDs")
	}

	if !strings.HasPrefix(id1, IDPrefix) {
		t.Errorf("Expected ID to start with '%s', got: %s", IDPrefix, id1)
	}

	// Check UUID format (prefix + 36 chars for UUID)
	if len(id1) != len(IDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(IDPrefix)+36, len(id1), id1)
	}
}
