// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session holds the process-wide session: the current user and the
dark-mode preference.

The state is loaded once at startup and handed to whoever needs it:

	sessions := session.NewManager(store)
	if _, err := sessions.Load(ctx); err != nil { ... }

Every change is written straight back to the currentUser and darkMode keys.
Request identity in the HTTP API comes from the bearer token, not from
here; currentUser only remembers the most recent login.
*/
package session
