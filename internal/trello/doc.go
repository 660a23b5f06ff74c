package trello

// Package trello implements the card-creation client for the Trello REST API.
// One CreateCard call issues exactly one POST request and classifies the
// response into a created card, an undecodable body, or a remote error.
