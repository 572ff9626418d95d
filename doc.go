// Package auth is a stateless authentication core: salted password hashing,
// HMAC signed self-contained session tokens, and per-request identity
// propagation.
//
// Identity scope:
//   - Every inbound request gets its own identity slot, installed into the
//     request context by middleware/requestauth. Login binds the resolved
//     Principal into it, logout clears it, and the authorization gate reads
//     it. Nothing is shared across requests, there is no process wide
//     security context.
//
// Tokens:
//   - A session token is the only artifact proving authentication between
//     requests. It carries the subject id and time bounds, signed with a
//     single process wide secret. Parsing fails closed: signature first,
//     expiry second, and any problem degrades the request to anonymous
//     rather than rejecting it outright.
//
// Failure shape:
//   - Unknown username and wrong password are one externally visible
//     outcome, ErrBadCredentials, so the login endpoint cannot enumerate
//     usernames. Disabled accounts surface as ErrAccountDisabled only after
//     the password matched.
package auth
