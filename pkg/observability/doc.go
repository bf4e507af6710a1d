// Package observability turns the runner's turn hooks into Prometheus metrics and log records.
//
// The metrics live in a private registry so that embedding applications decide how to expose
// them. The helmsman binary writes them to a node-exporter textfile when the run ends, since
// the bot itself opens no network ports.
package observability
