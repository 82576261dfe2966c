// Package keepalive runs a small HTTP server that hosting platforms and
// uptime monitors can poll: a human-readable status page at the root and
// a bare "OK" health endpoint. A companion pinger hits the health endpoint
// periodically so idle-timeout hosts keep the process alive.
package keepalive
