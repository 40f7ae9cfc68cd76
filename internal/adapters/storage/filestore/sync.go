package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/language"

	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/ports"
)

// assetPattern finds slug directories that contain vector artwork.
const assetPattern = "*/icon.svg"

// SyncResult reports what Sync changed.
type SyncResult = ports.SyncResult

// Sync adds a catalog entry for every <slug>/icon.svg under AssetsDir that
// the data file does not list yet. New entries get the slug with its first
// letter uppercased as name and an empty website. When anything was added
// the file is re-sorted by name and rewritten with two-space indentation;
// otherwise it is left untouched. Existing entries keep all their fields.
// Directories whose names the loader would reject, such as mixed case, are
// skipped.
func (s *Store) Sync(ctx context.Context) (SyncResult, error) {
	raw, err := os.ReadFile(s.cfg.DataFile)
	if err != nil {
		return SyncResult{}, fmt.Errorf("reading catalog: %w", err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return SyncResult{}, fmt.Errorf("parsing catalog: %w", err)
	}

	keys := make([]entryKey, len(entries))
	known := make(map[string]bool, len(entries))

	for i, entry := range entries {
		if err := json.Unmarshal(entry, &keys[i]); err != nil {
			return SyncResult{}, fmt.Errorf("parsing catalog entry %d: %w", i, err)
		}

		known[keys[i].Slug] = true
	}

	slugs, err := discoverSlugs(os.DirFS(s.cfg.AssetsDir))
	if err != nil {
		return SyncResult{}, err
	}

	result := SyncResult{}

	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return SyncResult{}, err
		}

		if known[slug] {
			continue
		}

		key := entryKey{Slug: slug, Name: defaultName(slug)}

		if err := validate.Struct(record{Slug: key.Slug, Name: key.Name, FileType: string(domain.FileTypeSVG)}); err != nil {
			s.logger.Warn("skipping asset directory that is not a valid slug",
				slog.String("slug", slug),
				slog.String("error", err.Error()),
			)

			continue
		}

		entry, err := json.Marshal(newEntry{
			Slug:     key.Slug,
			Name:     key.Name,
			Website:  "",
			FileType: string(domain.FileTypeSVG),
		})
		if err != nil {
			return SyncResult{}, fmt.Errorf("encoding entry %q: %w", slug, err)
		}

		entries = append(entries, entry)
		keys = append(keys, key)
		known[slug] = true
		result.Added = append(result.Added, slug)

		s.logger.Info("added catalog entry", slog.String("slug", slug))
	}

	result.Total = len(entries)

	if len(result.Added) == 0 {
		return result, nil
	}

	if err := s.write(sortByName(entries, keys)); err != nil {
		return SyncResult{}, err
	}

	s.Invalidate()

	return result, nil
}

type entryKey struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type newEntry struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Website  string `json:"website"`
	FileType string `json:"fileType"`
}

func discoverSlugs(fsys fs.FS) ([]string, error) {
	matches, err := doublestar.Glob(fsys, assetPattern, doublestar.WithFilesOnly())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("scanning assets: %w", err)
	}

	slugs := make([]string, 0, len(matches))
	for _, match := range matches {
		slugs = append(slugs, path.Dir(match))
	}

	slices.Sort(slugs)

	return slugs, nil
}

func defaultName(slug string) string {
	first, size := utf8.DecodeRuneInString(slug)
	if first == utf8.RuneError {
		return slug
	}

	return string(unicode.ToUpper(first)) + slug[size:]
}

func sortByName(entries []json.RawMessage, keys []entryKey) []json.RawMessage {
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}

	compare := domain.NameComparator(language.Und)
	slices.SortStableFunc(order, func(a, b int) int {
		return compare(keys[a].Name, keys[b].Name)
	})

	sorted := make([]json.RawMessage, len(entries))
	for i, idx := range order {
		sorted[i] = entries[idx]
	}

	return sorted
}

func (s *Store) write(entries []json.RawMessage) error {
	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	info, err := os.Stat(s.cfg.DataFile)
	if err != nil {
		return fmt.Errorf("stat catalog: %w", err)
	}

	tmp := s.cfg.DataFile + ".tmp"
	if err := os.WriteFile(tmp, bytes.TrimSpace(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}

	if err := os.Rename(tmp, s.cfg.DataFile); err != nil {
		return fmt.Errorf("replacing catalog: %w", err)
	}

	return nil
}
