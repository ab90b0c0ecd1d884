package main

import (
	"fmt"
	"log"
	"os"

	"github.com/limaJavier/cargolp/pkg/lp"
	"github.com/limaJavier/cargolp/pkg/model"
)

// Reads an instance in the plain "k n" format from the Standard Input and writes its LP model to the Standard Output
func main() {
	input, err := model.ReadText(os.Stdin)
	if err != nil {
		log.Fatalf("cannot parse input: %v", err)
	}

	lpModel, err := lp.NewCargoGenerator(lp.DefaultOptions()).Generate(input)
	if err != nil {
		log.Fatalf("cannot generate model: %v", err)
	}

	fmt.Print(lpModel.Text)
}
