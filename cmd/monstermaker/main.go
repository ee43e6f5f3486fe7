// Package main provides the monstermaker CLI.
package main

import "github.com/monstermaker429/monstermaker-core/internal/cli"

func main() {
	cli.Execute()
}
