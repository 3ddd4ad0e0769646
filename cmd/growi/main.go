package main

import (
	"github.com/bornholm/growi-editor/internal/command"
	"github.com/bornholm/growi-editor/internal/command/page"
	"github.com/bornholm/growi-editor/internal/command/token"
)

func main() {
	command.Main(
		"growi", "a Growi wiki page client",
		page.Command(),
		token.Command(),
	)
}
