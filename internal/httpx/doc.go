// Package httpx contains the shared HTTP plumbing for completion providers:
// a generic JSON POST helper with observability hooks and provider error
// message extraction.
package httpx
