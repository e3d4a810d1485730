// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package riot maps game identifiers to external resource paths and URLs.

Everything here is pure string templating: given an identifier, return a
deterministic path or URL. No network calls, no validation of whether
the identifier exists.

API paths (caller prepends the regional host):

	riot.LOLMatchByID("KR_7012345678")
	riot.AccountByRiotID("Hide on bush", "KR1")

Image URLs, rooted at the configured base URL (Data Dragon by default):

	im := riot.NewImages(cfg.ImageBaseURL)
	im.Champion("Irelia")
	im.Item(3078)

The board core does not call this package; it lives here for the match
and profile lookups of the surrounding product.
*/
package riot
