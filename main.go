// main.go - geoconv entry point
package main

import "github.com/valpere/geoconv/cmd"

func main() {
	cmd.Execute()
}
