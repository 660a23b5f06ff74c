package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It switches between the credential page and the idea page, forwards ideas to
// the submission service, and renders submission status. All UI strings are
// localized via Localization.
