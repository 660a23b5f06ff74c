package trello

import (
	"context"

	"github.com/ytget/idea-submitter/internal/model"
)

// CardCreator defines the interface for creating Trello cards.
type CardCreator interface {
	CreateCard(ctx context.Context, creds model.Credentials, idea model.IdeaSubmission) (*model.CardCreationResult, error)
}
