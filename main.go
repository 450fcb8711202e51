package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-faker/faker/v4"

	"github.com/TimCatCai/DbCourseDesign/btree"
	"github.com/TimCatCai/DbCourseDesign/cli"
)

var degree *int
var shouldSeed *bool
var seedNumRecords *int

func seedTreeWithTestRecords(t *btree.BTree[string, string]) {
	for i := 0; i < *seedNumRecords; i++ {
		t.Put(faker.Word()+faker.Word(), faker.Word()+faker.Word())
	}
}

func main() {
	setupFlags()

	tree, err := btree.New[string, string](*degree)
	if err != nil {
		log.Fatal(err)
	}

	if *shouldSeed {
		seedTreeWithTestRecords(tree)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, tree)
	demo.Start()
}

func setupFlags() {
	degree = flag.Int("degree", btree.DefaultDegree, "Minimum degree of the B-Tree (at least 2).")
	shouldSeed = flag.Bool("seed", false, "Seed the tree using records created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of records to seed the tree with upon startup.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
