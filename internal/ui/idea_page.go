package ui

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/idea-submitter/internal/model"
	"github.com/ytget/idea-submitter/internal/submit"
)

// IdeaPage collects one idea at a time and forwards it to the submitter
// it was constructed with.
type IdeaPage struct {
	submitter    submit.Submitter
	localization *Localization

	label       *widget.Label
	ideaEntry   *widget.Entry
	submitBtn   *widget.Button
	statusLabel *widget.Label
	cardLink    *widget.Hyperlink

	container *fyne.Container
}

// NewIdeaPage creates the idea page bound to submitter
func NewIdeaPage(submitter submit.Submitter, localization *Localization) *IdeaPage {
	p := &IdeaPage{
		submitter:    submitter,
		localization: localization,
	}
	p.createUI()
	return p
}

// createUI builds the widgets
func (p *IdeaPage) createUI() {
	p.label = widget.NewLabel("")

	p.ideaEntry = widget.NewEntry()
	// Pressing Enter submits like the button
	p.ideaEntry.OnSubmitted = func(string) {
		p.Submit()
	}

	p.submitBtn = widget.NewButton("", p.Submit)
	p.submitBtn.Importance = widget.HighImportance

	p.statusLabel = widget.NewLabel("")
	p.statusLabel.Alignment = fyne.TextAlignCenter
	p.statusLabel.Truncation = fyne.TextTruncateEllipsis
	p.statusLabel.Hide()

	p.cardLink = widget.NewHyperlink("", nil)
	p.cardLink.Alignment = fyne.TextAlignCenter
	p.cardLink.Hide()

	p.RefreshTexts()

	entryRow := container.NewGridWrap(fyne.NewSize(IdeaEntryWidth, p.ideaEntry.MinSize().Height), p.ideaEntry)
	status := container.NewGridWrap(fyne.NewSize(IdeaEntryWidth, p.statusLabel.MinSize().Height), p.statusLabel)

	form := container.NewVBox(
		p.label,
		entryRow,
		p.submitBtn,
		status,
		p.cardLink,
	)

	background := canvas.NewRectangle(IdeaPageBackground)
	p.container = container.NewStack(background, container.NewCenter(form))
}

// Container returns the page content
func (p *IdeaPage) Container() fyne.CanvasObject {
	return p.container
}

// RefreshTexts applies the current language
func (p *IdeaPage) RefreshTexts() {
	p.label.SetText(p.localization.GetText(KeyEnterIdea))
	p.submitBtn.SetText(p.localization.GetText(KeySubmitIdea))
	p.cardLink.SetText(p.localization.GetText(KeyOpenCard))
}

// Submit sends the entered idea and clears the entry regardless of outcome
func (p *IdeaPage) Submit() {
	content := p.ideaEntry.Text

	_, err := p.submitter.Submit(content)
	p.ideaEntry.SetText("")

	if err != nil {
		p.setStatus(IconError+" "+fmt.Sprintf(p.localization.GetText(KeySubmitRejected), err.Error()), nil)
	}
}

// ShowStatus renders a submission update. Must run on the UI goroutine.
func (p *IdeaPage) ShowStatus(sub model.Submission) {
	display := sub.GetDisplayContent()

	switch sub.Status {
	case model.SubmissionStatusPending:
		p.setStatus(fmt.Sprintf(p.localization.GetText(KeyStatusQueued), display), nil)
	case model.SubmissionStatusSending:
		p.setStatus(IconSending+" "+fmt.Sprintf(p.localization.GetText(KeyStatusSending), display), nil)
	case model.SubmissionStatusCreated:
		var link *url.URL
		if sub.CardURL != "" {
			if parsed, err := url.Parse(sub.CardURL); err == nil {
				link = parsed
			}
		}
		p.setStatus(IconCreated+" "+fmt.Sprintf(p.localization.GetText(KeyStatusCreated), display), link)
	case model.SubmissionStatusFailed:
		p.setStatus(IconError+" "+fmt.Sprintf(p.localization.GetText(KeyStatusFailed), sub.LastError), nil)
	case model.SubmissionStatusCancelled:
		p.setStatus(IconCancel+" "+fmt.Sprintf(p.localization.GetText(KeyStatusCancelled), display), nil)
	}
}

// StatusText returns the status line currently shown
func (p *IdeaPage) StatusText() string {
	if !p.statusLabel.Visible() {
		return ""
	}
	return p.statusLabel.Text
}

// setStatus shows message and, when link is set, the open-card hyperlink
func (p *IdeaPage) setStatus(message string, link *url.URL) {
	p.statusLabel.SetText(message)
	p.statusLabel.Show()

	if link != nil {
		p.cardLink.SetURL(link)
		p.cardLink.Show()
	} else {
		p.cardLink.Hide()
	}
}
