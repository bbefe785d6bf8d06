// Package identity contains the pure logic for deriving the deterministic
// output folder name of an order. No side effects; directory creation lives
// in the filesystem adapter.
package identity

import (
	"os"
	"strings"
)

// unsafeChars are the filesystem-unsafe characters replaced by a hyphen,
// in addition to the platform path separator.
const unsafeChars = `*?"<>|:\/`

// unknownToken fills in for order attributes missing from the dataset so the
// folder name always has its three components.
const unknownToken = "NECUNOSCUT"

// Sanitize makes a string safe for use as a single path element: path
// separators and filesystem-unsafe characters become hyphens, spaces become
// underscores. The transform is total and idempotent.
func Sanitize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "-")
	for _, c := range unsafeChars {
		name = strings.ReplaceAll(name, string(c), "-")
	}
	return strings.ReplaceAll(name, " ", "_")
}

// FolderName derives the output folder name for an order:
// <part>_<internalOrder>_<internalSheetRef>, each component sanitized.
// Empty components fall back to a fixed unknown token.
func FolderName(part, internalOrder, internalSheetRef string) string {
	return Sanitize(orUnknown(part)) + "_" +
		Sanitize(orUnknown(internalOrder)) + "_" +
		Sanitize(orUnknown(internalSheetRef))
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknownToken
	}
	return s
}
