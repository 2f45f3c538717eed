// Package cartridge implements the VCS's bank-switched cartridge address
// space: the 4 KiB window at the top of the 6507's address bus, and the
// handful of ways a cartridge larger than 4 KiB can page additional ROM
// into that window.
//
// Supported ROM sizes are 2 KiB, 4 KiB, 8 KiB, 12 KiB, 16 KiB and 32 KiB,
// selected automatically from the size of the loaded image, plus a
// Supercharger-style cassette cartridge whose image arrives as audio rather
// than a flat ROM dump (see AttachCassette).
package cartridge
