// Package bot is the Telegram front end.
// It long-polls for updates, answers the command set, and turns pasted
// track URLs into audio uploads via the download service.
// A progress message is edited in place as a request moves through the
// pipeline, and every failure category has its own user-facing text.
package bot
