package main

import (
	"fmt"

	"github.com/fwojciec/rake"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return rake.Errorf(rake.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Analyses.DeleteAnalysis(deps.Ctx, c.ID); err != nil {
		if rake.ErrorCode(err) == rake.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: analysis %q not found. Use 'rake history' to see stored analyses.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rake.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted analysis %s\n", c.ID)
	return nil
}
