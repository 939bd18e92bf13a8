// Package vision implements the client for the remote multimodal inference
// service.
//
// The client performs a single blocking round trip per operation: it attaches
// a base64-encoded screenshot and a text instruction to one user message,
// posts it to the Anthropic messages endpoint, and decodes the text reply.
// Locate additionally parses the reply into a FindResult, stripping a markdown
// code fence if the model wrapped its JSON in one despite being told not to.
//
// There are no retries, no streaming, and no state shared between calls.
package vision
