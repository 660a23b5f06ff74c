package submit

// Package submit runs idea submissions off the UI goroutine. It queues
// submissions in arrival order, bounds how many card requests are in flight,
// supports cancellation, and reports every state change through a callback.
