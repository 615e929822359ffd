// Package domain models maritime navigational warning (NAVWARN) bulletins.
//
// # Data Source
//
// Bulletins originate from national hydrographic offices as broadcast text
// (HYDROARC for Arctic routes, NAVAREA series elsewhere). The upstream
// scraper service fetches the published pages on a schedule, extracts the
// plain-text batch, and publishes each batch as one message to the Kafka
// source topic. A batch is an undelimited concatenation of one or more
// messages; there is no reliable separator between them.
//
// # Bulletin Conventions
//
// Date-time group (DTG):
//
//	"DDHHMMZ MON YY"  →  e.g. "192359Z AUG 25" = 19th, 23:59 UTC, Aug 2025.
//	Broadcast practice puts the DTG on a line of its own. A DTG-shaped
//	token embedded in prose (typically inside a cancellation clause like
//	"CANCEL THIS MSG 222359Z AUG 25") is NOT a message boundary; only a
//	DTG alone on its line counts. Two-digit years resolve through a fixed
//	pivot window, see [ParseDTG] and [DefaultPivotYear].
//
// Message identifiers:
//
//	"HYDROARC 136/25(15)"  →  series, sequence number / two-digit year,
//	optional parenthesised repeat suffix. Repeated broadcasts of the same
//	warning re-use the base id with a fresh suffix. When a batch carries
//	more than one message the suffix is stripped so repeats correlate to
//	a stable base id; a single-message batch keeps the suffix verbatim.
//	NAVAREA identifiers carry a roman-numeral region ("NAVAREA XIII 95/18").
//
// Positions:
//
//	Degree-minute notation: "71-45.10N 070-28.20W" (minutes may omit the
//	decimal part: "69-12N 033-45E"). South and west are negative after
//	conversion to decimal degrees. Tokens that fail the grammar or fall
//	outside geographic range are skipped silently.
//
// Cancellations:
//
//	"CANCEL HYDROARC 134/25", "CANCEL 47/18", or self-cancellation with a
//	deadline: "CANCEL THIS MSG 222359Z AUG 25". The embedded DTG substring
//	is re-parsed into a timestamp when possible.
//
// # Hazard Classification
//
// Classification is an ordered first-match-wins keyword heuristic, not a
// scored model. The rule list lives in hazard_rules.yaml (embedded at
// build time, overridable from disk) so the priority order stays an
// inspectable configuration artifact. Unmatched bodies fall back to
// [HazardUnclassified]. The heuristic makes no claim of semantically
// correct interpretation of free-form prose; it is refined by extending
// the rule list.
//
// # ID Generation
//
// Record IDs are deterministic SHA-256 hashes of message id, DTG, hazard
// category, and raw text. This enables idempotent upserts downstream
// (ON CONFLICT DO NOTHING) and replay safety without distributed
// coordination. See [generateID].
package domain
