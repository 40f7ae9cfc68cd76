package codegen

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	xmlDeclPattern = regexp.MustCompile(`<\?xml[^>]*\?>`)
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	wordSeparators = regexp.MustCompile(`[-_\s]+`)
	nonSelector    = regexp.MustCompile(`[^a-z0-9]+`)
)

// fallbackBaseName is used when a display name yields no identifier characters.
const fallbackBaseName = "Logo"

// CleanMarkup strips XML declarations and comments and trims whitespace.
//
// Removal repeats until nothing changes, so stripping one comment can never
// expose another and CleanMarkup(CleanMarkup(x)) == CleanMarkup(x).
func CleanMarkup(raw string) string {
	out := raw
	for {
		next := commentPattern.ReplaceAllString(xmlDeclPattern.ReplaceAllString(out, ""), "")
		next = strings.TrimSpace(next)

		if next == out {
			return out
		}

		out = next
	}
}

// ToComponentName builds a PascalCase identifier prefixed with "Icon".
//
// The name is split on runs of hyphens, underscores and whitespace. Each
// word gets an uppercase first letter and a lowercase remainder. Characters
// that cannot appear in an identifier are dropped, and a name with nothing
// left becomes "IconLogo".
func ToComponentName(name string) string {
	var b strings.Builder

	for _, word := range wordSeparators.Split(strings.TrimSpace(name), -1) {
		if word == "" {
			continue
		}

		first, size := utf8.DecodeRuneInString(word)
		titled := string(unicode.ToUpper(first)) + strings.ToLower(word[size:])

		for _, r := range titled {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
	}

	if b.Len() == 0 {
		return "Icon" + fallbackBaseName
	}

	return "Icon" + b.String()
}

// Selector derives a kebab-case element name from a display name.
// Runs of characters outside [a-z0-9] collapse to one hyphen; leading and
// trailing hyphens are dropped. A name with nothing left becomes "logo".
func Selector(name string) string {
	sel := strings.Trim(nonSelector.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if sel == "" {
		return strings.ToLower(fallbackBaseName)
	}

	return sel
}

// AttributeRename is one attribute-name substitution.
type AttributeRename struct {
	From string
	To   string
}

// ReactAttributeRenames lists, in application order, the presentation
// attributes rewritten to their JSX names.
var ReactAttributeRenames = []AttributeRename{
	{From: "class", To: "className"},
	{From: "fill-rule", To: "fillRule"},
	{From: "clip-rule", To: "clipRule"},
	{From: "stroke-width", To: "strokeWidth"},
	{From: "stroke-linecap", To: "strokeLinecap"},
	{From: "stroke-linejoin", To: "strokeLinejoin"},
	{From: "fill-opacity", To: "fillOpacity"},
	{From: "stroke-opacity", To: "strokeOpacity"},
}

type renameRule struct {
	pattern     *regexp.Regexp
	replacement string
}

var reactRenameRules = compileRenames(ReactAttributeRenames)

func compileRenames(renames []AttributeRename) []renameRule {
	rules := make([]renameRule, 0, len(renames))
	for _, r := range renames {
		rules = append(rules, renameRule{
			pattern:     regexp.MustCompile(`(\s)` + regexp.QuoteMeta(r.From) + `=`),
			replacement: "${1}" + r.To + "=",
		})
	}

	return rules
}

func applyRenames(markup string, rules []renameRule) string {
	for _, rule := range rules {
		markup = rule.pattern.ReplaceAllString(markup, rule.replacement)
	}

	return markup
}

// RootBinding is how a framework parameterizes the root <svg> tag: the
// attributes that replace width and height, and an optional pass-through
// attribute for the caller's remaining props.
type RootBinding struct {
	Width  string
	Height string
	Spread string
}

var (
	rootTagPattern = regexp.MustCompile(`<svg\b[^>]*>`)
	widthAttr      = regexp.MustCompile(`(\s)width=(?:"[^"]*"|'[^']*')`)
	heightAttr     = regexp.MustCompile(`(\s)height=(?:"[^"]*"|'[^']*')`)
)

// bindRoot rewrites width and height on the first <svg> start tag and adds
// the pass-through attribute. Markup without a root tag is returned as is.
func bindRoot(markup string, b RootBinding) string {
	loc := rootTagPattern.FindStringIndex(markup)
	if loc == nil {
		return markup
	}

	tag := markup[loc[0]:loc[1]]
	tag = replaceFirstAttr(widthAttr, tag, b.Width)
	tag = replaceFirstAttr(heightAttr, tag, b.Height)

	if b.Spread != "" {
		tag = "<svg " + b.Spread + tag[len("<svg"):]
	}

	return markup[:loc[0]] + tag + markup[loc[1]:]
}

// replaceFirstAttr keeps the captured leading whitespace.
func replaceFirstAttr(re *regexp.Regexp, tag, repl string) string {
	loc := re.FindStringSubmatchIndex(tag)
	if loc == nil {
		return tag
	}

	return tag[:loc[3]] + repl + tag[loc[1]:]
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}

	return strings.Join(lines, "\n")
}
