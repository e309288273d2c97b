//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Run groups targets that exercise the built CLI against the live service.
type Run mg.Namespace

func cli(args ...string) error {
	return sh.RunV("./"+binDir+"/"+binName, args...)
}

// Search builds the CLI and searches recipes by ingredient.
func (Run) Search(ingredient string) error {
	mg.Deps(Build)
	return cli("search", ingredient)
}

// Show builds the CLI and prints the detail of one recipe.
func (Run) Show(id string) error {
	mg.Deps(Build)
	return cli("show", id)
}

// Taxonomy builds the CLI and lists the remote categories and areas.
func (Run) Taxonomy() error {
	mg.Deps(Build)
	return cli("taxonomy")
}
