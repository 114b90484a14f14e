package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/mali/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// A .env file is optional, it usually carries GEMINI_API_KEY.
	_ = godotenv.Load()

	completion().Complete("mali")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	sub := map[string]*complete.Command{}
	for _, name := range []string{
		"register", "login", "logout", "whoami",
		"add", "pay", "settle", "reopen", "rm",
		"list", "summary", "counterparty", "advise",
		"topic",
	} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{Sub: sub}
}
