package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/TimCatCai/DbCourseDesign/btree"
)

type Cli struct {
	scanner    *bufio.Scanner
	tree       *btree.BTree[string, string]
	visualizer *btree.Visualizer[string, string]
}

func NewCli(s *bufio.Scanner, t *btree.BTree[string, string]) *Cli {
	v := &btree.Visualizer[string, string]{
		Tree: t,
	}
	return &Cli{scanner: s, tree: t, visualizer: v}
}

func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Print(`
B-Tree CLI

Available Commands:
  SET <key> <val> Insert or update a key-value pair in the B-Tree
  ADD <key> <val> Insert a key-value pair, rejecting an existing key
  GET <key>       Retrieve the value for key from the B-Tree
  DEL <key>       Remove a key-value pair from the B-Tree
  DUMP            Print a level-order view of the B-Tree
  EXIT            Terminate this session

`)
}

func (c *Cli) printPrompt() {
	fmt.Print("> ")
}

func (c *Cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Printf("Unknown command \"%s\"\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "add":
		c.processAddCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "dump":
		c.processDumpCommand()
	case "exit":
		os.Exit(0)
	}
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: SET <key> <value>")
		return
	}
	old, existed := c.tree.Put(args[0], args[1])
	if existed {
		fmt.Printf("Replaced previous value %q.\n", old)
	}
	fmt.Println(c.tree)
	fmt.Println(c.visualizer.Visualize())
}

func (c *Cli) processAddCommand(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: ADD <key> <value>")
		return
	}
	if !c.tree.Insert(args[0], args[1]) {
		fmt.Println("Key already exists.")
		return
	}
	fmt.Println(c.tree)
	fmt.Println(c.visualizer.Visualize())
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: GET <key>")
		return
	}
	val, found := c.tree.Search(args[0])
	if !found {
		fmt.Println("Key not found.")
		return
	}
	fmt.Println(val)
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: DEL <key>")
		return
	}
	_, found := c.tree.Delete(args[0])
	if !found {
		fmt.Println("Key not found.")
		return
	}
	fmt.Println(c.tree)
	fmt.Println(c.visualizer.Visualize())
}

func (c *Cli) processDumpCommand() {
	fmt.Println(c.tree)
	fmt.Println(c.visualizer.Visualize())
}
