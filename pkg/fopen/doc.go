// Package fopen implements the file-handle value (spec.md §3.5): a
// text file opened in one of {Read, Write, ReadWrite, Append, Exists},
// carrying a detected or requested encoding, a CR/LF option, a
// tab-vs-comma CSV delimiter, an exclusive-share flag, and an
// in-memory text image loaded whole on open and flushed whole on
// close.
//
// Grounded on the teacher's platform-split loader (hive's mmap-on-unix
// vs read-into-memory-elsewhere split): a File loads its entire
// content into memory when opened readable, the same "no streaming,
// the whole thing lives in RAM" choice the teacher makes for hive
// files. The open call itself splits by platform (file_windows.go /
// file_other.go) so the exclusive-share flag can be honored with a
// real Win32 share mode where one exists.
package fopen
