package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dukerupert/gazette/internal/model"
	"github.com/dukerupert/gazette/internal/store"
)

const usage = `usage: gazettectl [-file accounts.json] <command> [args]

commands:
  chperm <username> <admin|editor|user>   change an account's permission
  list                                    print every account
`

func main() {
	file := flag.String("file", "accounts.json", "path to the accounts file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	accounts, err := store.NewAccountStore(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gazettectl: %v\n", err)
		os.Exit(1)
	}

	switch args[0] {
	case "chperm":
		if len(args) != 3 {
			flag.Usage()
			os.Exit(2)
		}
		perm, err := model.ParsePermission(args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "gazettectl: %v\n", err)
			os.Exit(1)
		}
		if err := accounts.SetPermission(args[1], perm); err != nil {
			fmt.Fprintf(os.Stderr, "gazettectl: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s is now %s\n", args[1], perm)
	case "list":
		for _, a := range accounts.All() {
			fmt.Printf("%s\t%s\t%s\n", a.Username, a.Permission, a.Email)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}
