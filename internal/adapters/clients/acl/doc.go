// Package acl is the anti-corruption layer between the CDN mirror of the
// catalog repository and the domain.
//
// The remote shapes never leave this package:
//
//   - [LogoDTO] is the record as published in logos.json. [TranslateLogo]
//     validates it and produces a [domain.Logo].
//   - [MapFetchError] turns client failures ([clients.StatusError],
//     [clients.ErrCircuitOpen], [clients.ErrMaxRetriesExceeded]) into
//     domain errors.
//   - [CatalogStore] implements [ports.CatalogStore] on top of a
//     [clients.Client] rooted at the mirror.
//
// Error mapping:
//   - 404 and 410 become [domain.ErrNotFound]
//   - every other status, an open circuit and exhausted retries become
//     [domain.ErrUnavailable]
//
// CatalogStore itself follows the catalog contract: listings never fail and
// every lookup failure is reported as not found. The mapped error is kept
// for health checks and logs.
package acl
