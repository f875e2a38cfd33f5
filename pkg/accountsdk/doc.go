// Package accountsdk provides the request/response types for the account
// service API and a small typed HTTP client. The types are shared with the
// service's own HTTP handlers so the wire contract only exists once.
package accountsdk
