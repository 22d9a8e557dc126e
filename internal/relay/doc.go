// Package relay talks to the webhook relay that stores Deepgram callback
// results and serves them back by request id.
//
// The relay is configured by its callback URL (the address Deepgram
// delivers to); the sibling endpoints /transcript/{id}, /health, and /log
// are derived from it. A 404 on transcript fetch is the expected state while a
// job is still processing, and is distinct from the relay being
// unreachable.
package relay
