package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/idea-submitter/internal/model"
)

// CredentialPage collects the Trello API key, token and list ID.
// Values are not validated; empty fields are handed over as-is.
type CredentialPage struct {
	localization *Localization
	onSubmit     func(model.Credentials)

	apiKeyEntry     *widget.Entry
	showAPIKeyCheck *widget.Check
	tokenEntry      *widget.Entry
	showTokenCheck  *widget.Check
	listIDEntry     *widget.Entry
	submitBtn       *widget.Button

	container *fyne.Container
}

// NewCredentialPage creates the credential page; onSubmit receives the entered values
func NewCredentialPage(localization *Localization, onSubmit func(model.Credentials)) *CredentialPage {
	p := &CredentialPage{
		localization: localization,
		onSubmit:     onSubmit,
	}
	p.createUI()
	return p
}

// createUI builds the widgets
func (p *CredentialPage) createUI() {
	// Secrets start hidden
	p.apiKeyEntry = widget.NewEntry()
	p.apiKeyEntry.Password = true
	p.showAPIKeyCheck = widget.NewCheck("", func(checked bool) {
		setRevealed(p.apiKeyEntry, checked)
	})

	p.tokenEntry = widget.NewEntry()
	p.tokenEntry.Password = true
	p.showTokenCheck = widget.NewCheck("", func(checked bool) {
		setRevealed(p.tokenEntry, checked)
	})

	p.listIDEntry = widget.NewEntry()
	// Enter in the last field submits like the button
	p.listIDEntry.OnSubmitted = func(string) {
		p.submit()
	}

	p.submitBtn = widget.NewButton("", p.submit)
	p.submitBtn.Importance = widget.HighImportance

	p.RefreshTexts()

	form := container.NewVBox(
		p.apiKeyEntry,
		p.showAPIKeyCheck,
		p.tokenEntry,
		p.showTokenCheck,
		p.listIDEntry,
		p.submitBtn,
	)

	sized := container.NewGridWrap(fyne.NewSize(CredentialFormWidth, form.MinSize().Height), form)
	background := canvas.NewRectangle(CredentialPageBackground)
	p.container = container.NewStack(background, container.NewCenter(sized))
}

// setRevealed switches an entry between masked and plain text
func setRevealed(entry *widget.Entry, revealed bool) {
	entry.Password = !revealed
	entry.Refresh()
}

// Container returns the page content
func (p *CredentialPage) Container() fyne.CanvasObject {
	return p.container
}

// Credentials returns the values currently entered
func (p *CredentialPage) Credentials() model.Credentials {
	return model.Credentials{
		APIKey: p.apiKeyEntry.Text,
		Token:  p.tokenEntry.Text,
		ListID: p.listIDEntry.Text,
	}
}

// Prefill puts known values into the fields, e.g. partial startup configuration
func (p *CredentialPage) Prefill(creds model.Credentials) {
	p.apiKeyEntry.SetText(creds.APIKey)
	p.tokenEntry.SetText(creds.Token)
	p.listIDEntry.SetText(creds.ListID)
}

// RefreshTexts applies the current language
func (p *CredentialPage) RefreshTexts() {
	p.apiKeyEntry.SetPlaceHolder(p.localization.GetText(KeyEnterAPIKey))
	p.showAPIKeyCheck.SetText(p.localization.GetText(KeyShowAPIKey))
	p.tokenEntry.SetPlaceHolder(p.localization.GetText(KeyEnterToken))
	p.showTokenCheck.SetText(p.localization.GetText(KeyShowToken))
	p.listIDEntry.SetPlaceHolder(p.localization.GetText(KeyEnterListID))
	p.submitBtn.SetText(p.localization.GetText(KeySubmitCredentials))
}

// submit hands the entered values to the parent
func (p *CredentialPage) submit() {
	if p.onSubmit != nil {
		p.onSubmit(p.Credentials())
	}
}
