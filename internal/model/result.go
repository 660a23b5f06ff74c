package model

// Card is the subset of a Trello card returned on creation that the app uses
type Card struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	ListID   string `json:"idList"`
	BoardID  string `json:"idBoard"`
	URL      string `json:"url"`
	ShortURL string `json:"shortUrl"`
}

// CardCreationResult describes the response to one card creation request
type CardCreationResult struct {
	Success    bool
	Outcome    Outcome
	Payload    any    // decoded JSON body, nil unless the body parsed
	RawBody    string // response body exactly as received
	StatusCode int
	Card       Card // best-effort view of Payload; zero when Payload is not a card object
}
