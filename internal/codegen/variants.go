package codegen

import (
	"fmt"
	"strings"
)

// Variant names one generated snippet kind.
type Variant string

// Component and reference variants.
const (
	VariantReact   Variant = "react"
	VariantVue     Variant = "vue"
	VariantAngular Variant = "angular"
	VariantSvelte  Variant = "svelte"
	VariantCDN     Variant = "cdn"
	VariantHTML    Variant = "html"
	VariantSVG     Variant = "svg"
)

// ComponentVariants lists the framework targets in tab order.
var ComponentVariants = []Variant{VariantReact, VariantVue, VariantAngular, VariantSvelte}

// ParseVariant validates a variant name.
func ParseVariant(raw string) (Variant, bool) {
	v := Variant(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := variantInfo[v]

	return v, ok
}

// NeedsMarkup reports whether the variant is generated from svg markup.
func (v Variant) NeedsMarkup() bool {
	return variantInfo[v].needsMarkup
}

type variantMeta struct {
	label       string
	language    string
	filename    string
	needsMarkup bool
}

var variantInfo = map[Variant]variantMeta{
	VariantCDN:     {label: "CDN Link", language: "bash", filename: "cdn-url.txt"},
	VariantReact:   {label: "React", language: "tsx", filename: "Icon.tsx", needsMarkup: true},
	VariantVue:     {label: "Vue", language: "vue", filename: "Icon.vue", needsMarkup: true},
	VariantAngular: {label: "Angular", language: "typescript", filename: "icon.component.ts", needsMarkup: true},
	VariantSvelte:  {label: "Svelte", language: "svelte", filename: "Icon.svelte", needsMarkup: true},
	VariantSVG:     {label: "SVG", language: "html", filename: "icon.svg", needsMarkup: true},
	VariantHTML:    {label: "HTML", language: "html", filename: "index.html"},
}

// RootBindings maps each component variant to its root tag binding.
var RootBindings = map[Variant]RootBinding{
	VariantReact:   {Width: "width={size}", Height: "height={size}", Spread: "{...props}"},
	VariantVue:     {Width: `:width="size"`, Height: `:height="size"`, Spread: `v-bind="$attrs"`},
	VariantAngular: {Width: `[attr.width]="size"`, Height: `[attr.height]="size"`},
	VariantSvelte:  {Width: "width={size}", Height: "height={size}", Spread: "{...$$restProps}"},
}

// React renders a function component taking a size prop (default 24) and
// spreading the remaining props onto the root element.
func React(name, markup string) string {
	component := ToComponentName(name)
	body := bindRoot(applyRenames(CleanMarkup(markup), reactRenameRules), RootBindings[VariantReact])

	return fmt.Sprintf(`import { SVGProps } from 'react';

interface %[1]sProps extends SVGProps<SVGSVGElement> {
  size?: number | string;
}

export function %[1]s({ size = 24, ...props }: %[1]sProps) {
  return (
%[2]s
  );
}
`, component, indent(body, "    "))
}

// Vue renders a single-file component with a size prop (default 24);
// fallthrough attributes bind to the root element.
func Vue(_ string, markup string) string {
	body := bindRoot(CleanMarkup(markup), RootBindings[VariantVue])

	return fmt.Sprintf(`<script setup lang="ts">
withDefaults(defineProps<{
  size?: number | string;
}>(), {
  size: 24,
});
</script>

<template>
%s
</template>
`, indent(body, "  "))
}

// Angular renders a standalone component whose selector is derived from
// the name and whose size input defaults to 24.
func Angular(name, markup string) string {
	component := ToComponentName(name)
	body := escapeTemplateLiteral(bindRoot(CleanMarkup(markup), RootBindings[VariantAngular]))

	return fmt.Sprintf(`import { Component, Input } from '@angular/core';

@Component({
  selector: 'app-%s',
  standalone: true,
  template: `+"`"+`
%s
  `+"`"+`,
})
export class %sComponent {
  @Input() size: number | string = 24;
}
`, Selector(name), indent(body, "    "), component)
}

// Svelte renders a component exporting size (default 24) and spreading
// $$restProps onto the root element.
func Svelte(_ string, markup string) string {
	body := bindRoot(CleanMarkup(markup), RootBindings[VariantSvelte])

	return fmt.Sprintf(`<script lang="ts">
  export let size: number | string = 24;
</script>

%s
`, body)
}

var templateLiteralEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`", "${", `\${`)

func escapeTemplateLiteral(s string) string {
	return templateLiteralEscaper.Replace(s)
}

// Generate renders one of the component variants.
func Generate(v Variant, name, markup string) (string, error) {
	switch v {
	case VariantReact:
		return React(name, markup), nil
	case VariantVue:
		return Vue(name, markup), nil
	case VariantAngular:
		return Angular(name, markup), nil
	case VariantSvelte:
		return Svelte(name, markup), nil
	default:
		return "", fmt.Errorf("variant %q is not a component variant", v)
	}
}
