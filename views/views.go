// Package views embeds the HTML templates for the login pages and the admin
// console.
package views

import "embed"

//go:embed *.html
var FS embed.FS
