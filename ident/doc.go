// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates unique identifiers for board entities.

# Post IDs

Post identifiers are UUIDv4 strings with a "post-" prefix:

	id := ident.NewPostID() // post-3f1c…

# Option IDs

Poll option identifiers are shorter random hex strings with an "opt-"
prefix, since options are only ever referenced through their post:

	id := ident.NewOptionID() // opt-a91f02c43b1d

# Raw IDs

Random hex IDs of arbitrary length:

	id, err := ident.GenerateID(16) // 32 hex characters

Identifiers carry no meaning beyond uniqueness. Callers must not parse
them.
*/
package ident
