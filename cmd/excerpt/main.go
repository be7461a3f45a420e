// Package main provides the entry point for the excerpt CLI.
//
// excerpt reads an HTML chat export, finds the first message block marker
// and prints the text around it.
//
// Usage:
//
//	excerpt
//	excerpt inbox/message_1.html inbox/message_2.html
//	excerpt --pattern 'class="_a6-h"' --before 100 --after 400 export.html
//
// See --help for all available options.
package main

// main is the entry point for excerpt.
func main() {
	Execute()
}
