// Copyright © 2026 The chill-lsp authors

package main

import "github.com/Zaneham/Chill-lsp/cmd"

func main() {
	cmd.Execute()
}
