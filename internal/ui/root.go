package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"go.uber.org/zap"

	"github.com/ytget/idea-submitter/internal/config"
	"github.com/ytget/idea-submitter/internal/model"
	"github.com/ytget/idea-submitter/internal/submit"
)

// Screen enumerates the pages the main window can show.
// The window starts on ScreenCollectingCredentials and moves to
// ScreenSubmittingIdeas once, when credentials are submitted.
type Screen int

const (
	ScreenCollectingCredentials Screen = iota
	ScreenSubmittingIdeas
)

// String returns a readable name for logging
func (s Screen) String() string {
	switch s {
	case ScreenCollectingCredentials:
		return "CollectingCredentials"
	case ScreenSubmittingIdeas:
		return "SubmittingIdeas"
	default:
		return "Unknown"
	}
}

// SubmitterFactory builds the submission service for a set of credentials
type SubmitterFactory func(model.Credentials) submit.Submitter

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	newSubmitter SubmitterFactory
	logger       *zap.Logger

	screen         Screen
	credentialPage *CredentialPage
	ideaPage       *IdeaPage
	submitter      submit.Submitter
	content        *fyne.Container
}

// NewRootUI creates and initializes the main UI on the credential screen
func NewRootUI(window fyne.Window, settings *config.Settings, newSubmitter SubmitterFactory, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		newSubmitter: newSubmitter,
		logger:       logger,
		screen:       ScreenCollectingCredentials,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Cancel in-flight requests when the window goes away
	window.SetOnClosed(ui.Shutdown)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.credentialPage = NewCredentialPage(ui.localization, ui.onCredentialsSubmitted)
	ui.content = container.NewStack(ui.credentialPage.Container())

	ui.window.SetContent(ui.content)
	ui.logger.Debug("UI setup completed", zap.Stringer("screen", ui.screen))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// Screen returns the page currently shown
func (ui *RootUI) Screen() Screen {
	return ui.screen
}

// Prefill puts partial startup credentials into the credential page
func (ui *RootUI) Prefill(creds model.Credentials) {
	if ui.screen == ScreenCollectingCredentials {
		ui.credentialPage.Prefill(creds)
	}
}

// StartWithCredentials skips the credential page, for credentials loaded at startup
func (ui *RootUI) StartWithCredentials(creds model.Credentials) {
	ui.onCredentialsSubmitted(creds)
}

// onCredentialsSubmitted performs the single transition to the idea page.
// The submitter is built from the submitted values, so the idea page never
// reads credentials from shared state.
func (ui *RootUI) onCredentialsSubmitted(creds model.Credentials) {
	if ui.screen != ScreenCollectingCredentials {
		return
	}

	ui.logger.Info("Credentials submitted", zap.Stringer("credentials", creds), zap.Bool("complete", creds.IsComplete()))

	ui.submitter = ui.newSubmitter(creds)
	ui.submitter.SetUpdateCallback(ui.onSubmissionUpdate)

	ui.ideaPage = NewIdeaPage(ui.submitter, ui.localization)
	ui.screen = ScreenSubmittingIdeas

	ui.content.Objects = []fyne.CanvasObject{ui.ideaPage.Container()}
	ui.content.Refresh()
	ui.window.Canvas().Focus(ui.ideaPage.ideaEntry)

	ui.logger.Debug("Screen changed", zap.Stringer("screen", ui.screen))
}

// onSubmissionUpdate forwards service updates to the idea page on the UI goroutine
func (ui *RootUI) onSubmissionUpdate(sub model.Submission) {
	if sub.Status.IsFinished() {
		ui.logger.Debug("Submission update", zap.String("id", sub.ID), zap.Stringer("status", sub.Status))
	}
	if !ui.settings.GetShowStatusMessages() || ui.ideaPage == nil {
		return
	}

	fyne.Do(func() {
		ui.ideaPage.ShowStatus(sub)
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies settings that can change at runtime
func (ui *RootUI) onSettingsSaved() {
	if ui.submitter != nil {
		ui.submitter.SetMaxParallel(ui.settings.GetMaxParallelSubmissions())
	}
	ui.onLanguageChange(ui.settings.GetLanguage())
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.credentialPage.RefreshTexts()
	if ui.ideaPage != nil {
		ui.ideaPage.RefreshTexts()
	}
}

// Shutdown stops the submission service, cancelling in-flight requests
func (ui *RootUI) Shutdown() {
	if ui.submitter == nil {
		return
	}
	ui.logger.Info("Window closed, stopping submissions")
	ui.submitter.Shutdown()
}
