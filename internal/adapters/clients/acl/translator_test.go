package acl

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/logodir/internal/adapters/clients"
	"github.com/jsamuelsen/logodir/internal/domain"
)

func TestTranslateLogo(t *testing.T) {
	tests := []struct {
		name    string
		in      LogoDTO
		want    domain.Logo
		wantErr string
	}{
		{
			name: "complete record",
			in:   LogoDTO{Slug: "github", Name: "GitHub", Category: "dev", Tags: []string{"git"}, Website: "https://github.com", FileType: "svg"},
			want: domain.Logo{Slug: "github", Name: "GitHub", Category: "dev", Tags: []string{"git"}, Website: "https://github.com", FileType: domain.FileTypeSVG},
		},
		{
			name: "missing file type defaults to svg",
			in:   LogoDTO{Slug: "vercel", Name: "Vercel"},
			want: domain.Logo{Slug: "vercel", Name: "Vercel", FileType: domain.FileTypeSVG},
		},
		{
			name: "raster",
			in:   LogoDTO{Slug: "acme", Name: "Acme", FileType: "png"},
			want: domain.Logo{Slug: "acme", Name: "Acme", FileType: domain.FileTypePNG},
		},
		{name: "missing slug", in: LogoDTO{Name: "X"}, wantErr: "slug"},
		{name: "uppercase slug", in: LogoDTO{Slug: "GitHub", Name: "X"}, wantErr: "lowercase"},
		{name: "slug with separator", in: LogoDTO{Slug: "a/b", Name: "X"}, wantErr: "path segment"},
		{name: "missing name", in: LogoDTO{Slug: "x", Name: "  "}, wantErr: "name"},
		{name: "unknown file type", in: LogoDTO{Slug: "x", Name: "X", FileType: "gif"}, wantErr: "fileType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TranslateLogo(&tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateEach_SkipsFailures(t *testing.T) {
	items := []LogoDTO{
		{Slug: "a", Name: "A"},
		{Slug: "", Name: "B"},
		{Slug: "c", Name: "C"},
	}

	logos, errs := TranslateEach(items, TranslateLogo)

	require.Len(t, logos, 2)
	assert.Equal(t, "a", logos[0].Slug)
	assert.Equal(t, "c", logos[1].Slug)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "item 1")
}

func TestDecodeJSON(t *testing.T) {
	got, err := DecodeJSON[[]LogoDTO]([]byte(`[{"slug":"a","name":"A","fileType":"jpg"}]`))
	require.NoError(t, err)
	assert.Equal(t, []LogoDTO{{Slug: "a", Name: "A", FileType: "jpg"}}, got)

	_, err = DecodeJSON[[]LogoDTO]([]byte(`{"slug":`))
	assert.Error(t, err)
}

func TestMapFetchError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		text  string
	}{
		{name: "not found", err: &clients.StatusError{StatusCode: 404}, check: domain.IsNotFound, text: `asset "github/icon.svg" not found`},
		{name: "gone", err: &clients.StatusError{StatusCode: 410}, check: domain.IsNotFound},
		{name: "rate limited", err: &clients.StatusError{StatusCode: 429}, check: domain.IsUnavailable, text: "rate limit"},
		{name: "forbidden", err: &clients.StatusError{StatusCode: 403}, check: domain.IsUnavailable, text: "status 403"},
		{name: "circuit open", err: clients.ErrCircuitOpen, check: domain.IsUnavailable, text: "circuit breaker open"},
		{name: "retries exhausted", err: fmt.Errorf("%w: boom", clients.ErrMaxRetriesExceeded), check: domain.IsUnavailable, text: "max retries"},
		{name: "cancelled", err: context.Canceled, check: domain.IsUnavailable, text: "abandoned"},
		{name: "other", err: errors.New("dns"), check: domain.IsUnavailable, text: "dns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapFetchError(tt.err, "cdn", "fetch asset", "asset", "github/icon.svg")
			require.Error(t, got)
			assert.True(t, tt.check(got), got.Error())

			if tt.text != "" {
				assert.Contains(t, got.Error(), tt.text)
			}
		})
	}

	assert.NoError(t, MapFetchError(nil, "cdn", "x", "y", "z"))
}
