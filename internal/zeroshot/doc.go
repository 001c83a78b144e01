// Package zeroshot provides zero-shot text classification backends.
// A backend receives a text and a list of candidate labels and returns
// every label with a probability, best-first. Hugging Face inference,
// OpenAI and Anthropic are supported, plus a static backend for demos
// and tests. Pipeline adds input normalization, caching, rate limiting
// and retries on top of any backend.
package zeroshot
