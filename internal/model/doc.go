package model

// Package model defines domain data structures used across the app: Trello
// credentials, idea submissions, card creation results and status enums.
// Values are plain structs so they can be copied into UI callbacks safely.
