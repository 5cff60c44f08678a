// Package digest computes cryptographic digests of names.
//
// The primary algorithm is SHA3-256 (NIST FIPS 202) over the UTF-8 bytes of
// the name. Digests are deterministic and total: any string, including the
// empty string, has exactly one digest.
package digest
