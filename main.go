package main

import (
	"log"
	"os"

	"exprvm/pkg/demo"
)

func main() {
	if err := demo.Run(os.Stdout); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}
