// Package ride holds the ride summary types shared by the recorder and the
// announcer, and the pure text handling around them.
//
// Two input shapes arrive on stdin from the upstream cradle reader:
//
//   - raw mode: one comma-separated line of seven numeric fields, parsed by
//     ParseRecordLine into a Record for storage
//   - labelled mode: one "label: value" pair per line, parsed by ParsePairs
//     and turned into a status update by BuildStatus
//
// FormatSummary converts a Record back into the labelled form, so a raw line
// can be both stored and announced.
//
// Nothing in this package touches the filesystem, the database or the network.
package ride
