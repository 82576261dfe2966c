// Package app assembles and runs the bot process: the platform clients,
// the download pipeline, the statistics store, the keep-alive server with
// its pinger, and the Telegram front end.
package app
