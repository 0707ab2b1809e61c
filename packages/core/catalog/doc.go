// Package catalog indexes the request templates and environments found
// below a reqq root directory and executes requests by name.
//
// A catalog is built by scanning the root once. Files inside root/envs are
// environments; every other file is a request template. Entries are looked
// up by their derived names (see package naming), never by path.
package catalog
