// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pixel reports conversion events to the Facebook Conversions API.

# Client

	client := pixel.NewClient(cfg)
	if client.Enabled() {
		ev := pixel.NewPurchaseEvent(sub.Email, cfg.ConversionValue, cfg.ConversionCurrency, time.Now())
		resp, err := client.SendEvent(ctx, ev)
	}

Requests go to

	POST {GraphURL}/{GraphVersion}/{PixelID}/events?access_token=...

with a single event in the "data" array. Emails are sent only as
SHA-256 hashes (see auth.HashEmail); an empty email sends "em": [].

# Errors

  - ErrNotConfigured: pixel ID or access token missing
  - *APIError: the API answered with a non-2xx status

Transport failures and timeouts (cfg.PixelTimeout, default 5s) are returned
wrapped. There is no retry.
*/
package pixel
