// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog publishes tests and serves them back.

Published tests live in one JSON object under the "tests" key, indexed by
test id:

	cat := catalog.New(store, "https://quiz.example.com")
	test, link, err := cat.Publish(ctx, draft)  // link = <publicURL>/test/<id>

Publish runs builder.ValidateForPublish first and writes nothing on
failure. Respondents receive catalog.Public(test), which omits the correct
answers and the access password. Unlock compares the access password in
constant time and never stores anything.
*/
package catalog
