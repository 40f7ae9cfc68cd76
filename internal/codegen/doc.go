// Package codegen turns a logo's svg markup into copy-paste source for
// component frameworks (React, Vue, Angular, Svelte) and into plain
// references (CDN URL, img tag).
//
// Every function here is pure. Markup that lacks the expected structure,
// such as a missing root element or missing width/height attributes, is
// passed through with the affected substitutions skipped.
package codegen
