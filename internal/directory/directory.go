// Package directory loads the server list and resolves an identifier
// prefix to exactly one server record.
package directory

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	wserr "wsrcon/internal/errors"
)

// ServerRecord is one remote-console endpoint from the server list.
type ServerRecord struct {
	ID       string `yaml:"id"`
	Host     string `yaml:"host"`
	Port     uint16 `yaml:"port"`
	Password string `yaml:"password"` // embedded in the URL path
}

type document struct {
	Servers []ServerRecord `yaml:"servers"`
}

// Load reads and parses the YAML server list at path.  A missing or
// unreadable file yields *errors.FileError; a malformed document yields
// *errors.ParseError.
func Load(path string) ([]ServerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &wserr.FileError{Path: path, Err: err}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &wserr.ParseError{Path: path, Err: err}
	}
	return doc.Servers, nil
}

// Resolve returns the single record whose ID starts with prefix.  The
// match is case-sensitive.  Zero matches is a *errors.LookupError and
// two or more is a *errors.AmbiguousError listing every matching ID in
// file order.
func Resolve(records []ServerRecord, prefix string) (ServerRecord, error) {
	var matches []ServerRecord
	for _, r := range records {
		if strings.HasPrefix(r.ID, prefix) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return ServerRecord{}, &wserr.LookupError{Prefix: prefix}
	case 1:
		return matches[0], nil
	default:
		return ServerRecord{}, &wserr.AmbiguousError{Prefix: prefix, Matches: IDs(matches)}
	}
}

// IDs returns the identifiers of records in order.
func IDs(records []ServerRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}
