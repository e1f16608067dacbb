// Package web exports display directives as an HTML fragment or as
// Markdown. HTML is the primary form, with collapsible <details> sections
// mirroring the terminal layout; [Markdown] derives its output from the
// same HTML through the html-to-markdown converter.
package web
