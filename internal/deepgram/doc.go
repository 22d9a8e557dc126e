// Package deepgram wraps the Deepgram speech-to-text REST API: async
// transcription submission, project resolution, and per-request status
// lookup.
//
// The client authenticates with "Authorization: Token <key>" and resolves
// the project id once per client lifetime: an explicitly configured id
// wins, otherwise the first project visible to the credential is fetched
// and memoized.
package deepgram
