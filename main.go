package main

import "github.com/chriscorrea/snip/internal/cmd"

func main() {
	cmd.Execute()
}
