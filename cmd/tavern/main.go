// Package main provides the tavern CLI for inspecting character cards
// embedded in PNG images.
package main

func main() {
	Execute()
}
