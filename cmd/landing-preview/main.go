package main

import "github.com/oshokin/landing-motion/cmd/landing-preview/cmd"

func main() {
	cmd.Execute()
}
