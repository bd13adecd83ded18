package lintconfig

import (
	"errors"
	"fmt"
)

var errNoConfig = errors.New("no lint configuration found")

var (
	errUnknownRule = func(name string) error {
		return fmt.Errorf("unknown rule: %s", name)
	}

	errInvalidRule = func(name string, err error) error {
		return fmt.Errorf("invalid rule %s: %w", name, err)
	}

	errUnknownExtends = func(ref string) error {
		return fmt.Errorf("unknown extends reference: %s", ref)
	}

	errExtendsCycle = func(ref string) error {
		return fmt.Errorf("extends cycle detected at: %s", ref)
	}

	errFailedToParse = func(path string, err error) error {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	errFailedToFetch = func(url string, err error) error {
		return fmt.Errorf("failed to fetch shared config %s: %w", url, err)
	}
)
