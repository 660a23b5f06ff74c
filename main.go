package main

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/idea-submitter/internal/config"
	"github.com/ytget/idea-submitter/internal/logging"
	"github.com/ytget/idea-submitter/internal/model"
	"github.com/ytget/idea-submitter/internal/report"
	"github.com/ytget/idea-submitter/internal/submit"
	"github.com/ytget/idea-submitter/internal/trello"
	"github.com/ytget/idea-submitter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.idea-submitter"
)

func main() {
	logger, err := logging.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	logger.Info("Idea Submitter starting", zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewFormTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	}

	settings := config.NewSettings(myApp)
	printer := report.NewPrinter(os.Stdout)

	newSubmitter := func(creds model.Credentials) submit.Submitter {
		client := trello.NewClient(
			trello.WithTimeout(settings.GetRequestTimeout()),
			trello.WithLogger(logger.Named("trello")),
		)
		return submit.NewService(client, creds, printer, logger.Named("submit"), settings.GetMaxParallelSubmissions())
	}

	root := ui.NewRootUI(myWindow, settings, newSubmitter, logger.Named("ui"))

	// Complete startup configuration skips the credential page
	creds, err := config.NewEnvSource().Load()
	switch {
	case err == nil:
		logger.Info("Using credentials from environment", zap.Stringer("credentials", creds))
		root.StartWithCredentials(creds)
	case errors.Is(err, config.ErrMissingCredentials):
		logger.Info("Startup credentials incomplete, asking the user", zap.Error(err))
		root.Prefill(creds)
	default:
		logger.Warn("Failed to load startup configuration", zap.Error(err))
	}

	myWindow.ShowAndRun()
}
