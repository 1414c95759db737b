// Package validate provides a shallow plausibility check for email addresses.
//
// Email accepts a string when it has the shape local@domain.tld: one or more
// characters that are neither whitespace nor '@', an '@', one or more such
// characters, a '.', and one or more such characters. Extra dots may appear on
// either side of that '.', so "a@b.c.d" is accepted too.
//
// This is intentionally not an RFC 5322 parser. It does not look up the domain,
// accepts doubled dots in the domain ("a@b..c") and rejects some addresses a
// strict parser would allow, such as quoted local parts with spaces or domains
// without a dot ("user@localhost").
//
// Whitespace covers the full Unicode set recognised by ECMAScript regular
// expressions, not just ASCII, so results agree with the same pattern running
// in a browser. A no-break space (U+00A0) or a byte order mark (U+FEFF)
// anywhere in the input makes it invalid.
//
// # Usage
//
//	if !validate.Email(form.Email) {
//		return errors.New("invalid email address")
//	}
//
// Email never panics and has no failure mode of its own: every string,
// including the empty string, yields true or false. It is safe for concurrent
// use.
package validate
