package main

import (
	"strings"

	"github.com/govalues/fixed"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var errUnknownPolicy = errors.New("unknown invalid argument policy")

// handler returns the invalid argument handler selected by name.
func handler(name string, logger logrus.FieldLogger) (fixed.Handler, error) {
	switch strings.ToLower(name) {
	case "trap":
		return fixed.Trap, nil
	case "ignore":
		return fixed.Ignore, nil
	case "log":
		return fixed.Log(logger), nil
	}
	return nil, errors.Wrapf(errUnknownPolicy, "parsing %q", name)
}
