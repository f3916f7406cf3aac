// Command transcode converts text to binary, decimal, hexadecimal, base64 or
// Morse code and back.
package main

import (
	"log"

	"github.com/npillmayer/transcode/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
