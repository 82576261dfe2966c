// Package stats keeps per-user and global download counters in a flat JSON file.
// The file is rewritten after every mutation, so a crash loses at most the
// most recent record. All access goes through one mutex because the bot
// handles a handful of users, not a fleet.
package stats
