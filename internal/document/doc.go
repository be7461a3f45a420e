// Package document loads a text file into memory under a declared encoding.
//
// Encoding labels follow the WHATWG Encoding Standard, the same table
// browsers use for the charset attribute of an HTML page, so any label a
// chat export could declare ("utf-8", "windows-1252", "shift_jis", ...) is
// accepted. UTF-8 input is validated strictly: a file that is not valid
// UTF-8 is an error rather than being silently repaired with U+FFFD.
//
// Line endings are normalised the way a text-mode read does: "\r\n" and a
// lone "\r" both become "\n". Character offsets reported by the locator
// therefore refer to the normalised text.
package document
