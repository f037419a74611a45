// Package mailer provides the confirmation dispatch transport behind a
// provider-agnostic Sender interface.
//
// Two implementations are included:
//   - PostmarkSender for production delivery through Postmark's
//     transactional API, sending both HTML and plaintext bodies.
//   - DevSender for local development, which writes each message to disk
//     instead of sending it.
//
// All implementations validate a Message before sending and report failures
// through sentinel errors so callers can decide how to degrade.
package mailer
