// Package llm talks to the external gift-judgment source. It provides the
// OpenAI-backed client and the Scorer, which wraps any Client with the
// neutral-fallback policy so scoring failures never abort a request.
package llm
