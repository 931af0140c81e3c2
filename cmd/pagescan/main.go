// Package main provides the entry point for the pagescan CLI.
//
// pagescan renders web page audit results as terminal, JSON, or HTML
// reports and keeps a local history of saved runs.
//
// Usage:
//
//	pagescan report results.json
//	pagescan report -f html -o report.html results.json
//	pagescan history <url>
//
// See --help for all available options.
package main

// main is the entry point for pagescan.
func main() {
	Execute()
}
