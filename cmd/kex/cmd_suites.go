package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/codahale/kex/pkg/kex/suite"
)

type suitesCmd struct{}

func (cmd *suitesCmd) Run(ctx *kong.Context) error {
	for _, name := range suite.Names() {
		s, err := suite.ByName(name)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(ctx.Stdout, "%s\t%d-byte keys\n", name, s.KeySize()); err != nil {
			return err
		}
	}

	return nil
}
