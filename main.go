// Package main is the entry point for the copy-tool binary.
package main

import "github.com/ryclarke/copy-tool/cmd"

func main() {
	cmd.Execute()
}
