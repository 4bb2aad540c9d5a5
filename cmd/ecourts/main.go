package main

import (
	"context"
	"ecourts-scraper/cmd/ecourts/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
