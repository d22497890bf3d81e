package main

import "github.com/guimove/workmap/cmd"

func main() {
	cmd.Execute()
}
