package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkup = `<svg width="24" height="24" class="x"><path/></svg>`

func TestReact(t *testing.T) {
	want := `import { SVGProps } from 'react';

interface IconTestProps extends SVGProps<SVGSVGElement> {
  size?: number | string;
}

export function IconTest({ size = 24, ...props }: IconTestProps) {
  return (
    <svg {...props} width={size} height={size} className="x"><path/></svg>
  );
}
`

	got := React("Test", sampleMarkup)

	assert.Equal(t, want, got)
	assert.Contains(t, got, `className="x"`)
	assert.NotContains(t, got, `class="x"`)
	assert.NotContains(t, got, `width="24"`)
}

func TestReact_AttributeRenames(t *testing.T) {
	for _, rename := range ReactAttributeRenames {
		t.Run(rename.From, func(t *testing.T) {
			markup := `<svg><path ` + rename.From + `="v"/></svg>`
			got := React("Test", markup)

			assert.Contains(t, got, " "+rename.To+`="v"`)
			assert.NotContains(t, got, " "+rename.From+`="v"`)
		})
	}
}

func TestReact_CleansFirst(t *testing.T) {
	got := React("Test", `<?xml version="1.0"?><!-- width="1" --><svg width="1" height="1"/>`)

	assert.NotContains(t, got, "<?xml")
	assert.NotContains(t, got, "<!--")
	assert.Contains(t, got, "<svg {...props} width={size} height={size}/>")
}

func TestReact_MultilineMarkupIsIndented(t *testing.T) {
	got := React("Test", "<svg width=\"1\">\n<path/>\n</svg>")

	assert.Contains(t, got, "    <svg {...props} width={size}>\n    <path/>\n    </svg>\n  );")
}

func TestVue(t *testing.T) {
	got := Vue("Test", `<svg width="24" height="24"><path stroke-width="2"/></svg>`)

	assert.True(t, strings.HasPrefix(got, `<script setup lang="ts">`))
	assert.Contains(t, got, "size: 24,")
	assert.Contains(t, got, `<svg v-bind="$attrs" :width="size" :height="size"><path stroke-width="2"/></svg>`)
	assert.Contains(t, got, "<template>\n  <svg")
}

func TestAngular(t *testing.T) {
	got := Angular("Font Awesome", sampleMarkup)

	assert.Contains(t, got, "selector: 'app-font-awesome',")
	assert.Contains(t, got, "standalone: true,")
	assert.Contains(t, got, `<svg [attr.width]="size" [attr.height]="size" class="x"><path/></svg>`)
	assert.Contains(t, got, "export class IconFontAwesomeComponent {")
	assert.Contains(t, got, "@Input() size: number | string = 24;")
}

func TestAngular_EscapesTemplateLiteral(t *testing.T) {
	got := Angular("Test", "<svg><text>a`b ${x} c\\d</text></svg>")

	assert.Contains(t, got, "<text>a\\`b \\${x} c\\\\d</text>")
}

func TestSvelte(t *testing.T) {
	want := `<script lang="ts">
  export let size: number | string = 24;
</script>

<svg {...$$restProps} width={size} height={size} class="x"><path/></svg>
`

	assert.Equal(t, want, Svelte("Test", sampleMarkup))
}

func TestVariants_MalformedMarkupIsBestEffort(t *testing.T) {
	markup := `<path d="M0 0"/>`

	for _, v := range ComponentVariants {
		t.Run(string(v), func(t *testing.T) {
			got, err := Generate(v, "Test", markup)
			require.NoError(t, err)

			assert.Contains(t, got, markup)
			assert.NotContains(t, got, "width={size}")
			assert.NotContains(t, got, `:width="size"`)
		})
	}
}

func TestRootBindings_AppliedByEveryComponentVariant(t *testing.T) {
	require.Len(t, RootBindings, len(ComponentVariants))

	for _, v := range ComponentVariants {
		t.Run(string(v), func(t *testing.T) {
			binding, ok := RootBindings[v]
			require.True(t, ok)

			got, err := Generate(v, "Test", sampleMarkup)
			require.NoError(t, err)

			assert.Contains(t, got, binding.Width)
			assert.Contains(t, got, binding.Height)
			assert.NotContains(t, got, `width="24"`)
			assert.NotContains(t, got, `height="24"`)

			if binding.Spread != "" {
				assert.Contains(t, got, "<svg "+binding.Spread+" ")
			}
		})
	}
}

func TestGenerate_RejectsReferenceVariants(t *testing.T) {
	_, err := Generate(VariantCDN, "Test", sampleMarkup)
	require.Error(t, err)
}

func TestParseVariant(t *testing.T) {
	v, ok := ParseVariant(" React ")
	assert.True(t, ok)
	assert.Equal(t, VariantReact, v)
	assert.True(t, v.NeedsMarkup())

	v, ok = ParseVariant("cdn")
	assert.True(t, ok)
	assert.False(t, v.NeedsMarkup())

	_, ok = ParseVariant("solid")
	assert.False(t, ok)
}
