/*
  Mu Lisp in Go: the command.

  Usage: mu [-max-depth N] [-prompt S] [-history PATH] [file... | -]
*/
package main

import (
	"log"
	"os"

	"github.com/nukata/mu-in-go/mu"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mu: ")
	if len(os.Args) == 0 {
		log.Fatal("no program name")
	}
	os.Exit(mu.Main(os.Args))
}
