/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"html"
	"strings"
)

func humanReadableSize(bytes int64) string {
	const unit int64 = 1000
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := unit, 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB",
		float64(bytes)/float64(div),
		"kMGTPE"[exp])
}

// homePage lists the available games, each link opening a fresh session.
func homePage(prefix string) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString(getFavicon())
	b.WriteString(fmt.Sprintf(`<link rel="stylesheet" href="%s/assets/wordguess/app.css">`, html.EscapeString(prefix)))
	b.WriteString(`<title>wordguess</title></head><body>`)
	b.WriteString(`<h1>wordguess</h1>`)
	b.WriteString(`<p>One player gives clues, everyone else races to guess the word.</p>`)
	b.WriteString(fmt.Sprintf(`<p><a class="button" href="%s/wordguess">Start a new game</a></p>`, html.EscapeString(prefix)))
	b.WriteString(`</body></html>`)

	return b.String()
}
