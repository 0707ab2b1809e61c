// Package env handles environment documents for reqq.
//
// An environment is a named key/value document stored below the envs/
// directory of a reqq root. It provides functionality for:
//   - Lazily loading a document once and keeping its raw text
//   - Parsing JSON, YAML, TOML and .env documents into one structured form
//   - Looking up scalar values by dotted key path (hosts.0, auth.token)
//   - Validating documents against a JSON Schema
package env
