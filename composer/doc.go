// Package composer drives one composition session: it applies input
// commands to a tokenlist.List, looks up candidates for the token being
// spelled, keeps the candidate chooser and symbol boards, and reports every
// visible change through Config.OnEvent.
//
// A Session is not safe for concurrent use. Dictionary calls run
// synchronously on the calling goroutine under the context passed to the
// command.
package composer
