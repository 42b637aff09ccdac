// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"minic/repl"
)

func main() {
	commonlog.Configure(0, nil)

	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Welcome to the minic REPL, %s!\n", currentUser.Username)
	repl.Start(ctx, os.Stdin, os.Stdout)
}
