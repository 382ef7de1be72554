package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userseed/internal/common"
	"github.com/dmitrijs2005/userseed/internal/logging"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a recording stub.
type execIface interface {
	SetOrganization(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, username string) error
	Delete(ctx context.Context, username string) error
	Show(ctx context.Context, username string) error
	List(ctx context.Context) error
	Clear(ctx context.Context) error
	GenPass(ctx context.Context) error
	Export(ctx context.Context, format string) error
	Save(ctx context.Context, format, name string) error
}

const helpText = `Available commands:
  org                     set organization name and URL
  add                     add a user
  edit <username>         change a user
  delete <username>       remove a user (alias: rm)
  show <username>         print one user
  list                    list users (alias: l)
  clear                   remove every user
  genpass                 print a generated password
  export <format> [file]  print bitwarden | commands | idp, or write it
                          into the output directory when file is given
  save <format> [file]    write an export into the output directory
  exit                    leave (alias: quit)`

// runREPL reads one command per line and dispatches it to a until the user
// types "exit"/"quit" or the input ends. Handler errors are logged and the
// loop goes on.
func runREPL(ctx context.Context, a execIface, log logging.Logger, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("%s %s> ", common.AppName, statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "org":
			cmdErr = a.SetOrganization(ctx)

		case "add":
			cmdErr = a.Add(ctx)

		case "edit", "delete", "rm", "show":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <username>", cmd))
				continue
			}
			switch cmd {
			case "edit":
				cmdErr = a.Edit(ctx, args[0])
			case "show":
				cmdErr = a.Show(ctx, args[0])
			default:
				cmdErr = a.Delete(ctx, args[0])
			}

		case "l", "list":
			cmdErr = a.List(ctx)

		case "clear":
			cmdErr = a.Clear(ctx)

		case "genpass":
			cmdErr = a.GenPass(ctx)

		case "export":
			if len(args) == 0 {
				printlnFn("Usage: export bitwarden|commands|idp [file]")
				continue
			}
			if len(args) > 1 {
				cmdErr = a.Save(ctx, args[0], args[1])
				break
			}
			cmdErr = a.Export(ctx, args[0])

		case "save":
			if len(args) == 0 {
				printlnFn("Usage: save bitwarden|commands|idp [file]")
				continue
			}
			name := ""
			if len(args) > 1 {
				name = args[1]
			}
			cmdErr = a.Save(ctx, args[0], name)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			log.Error(ctx, "command failed", "command", cmd, "error", cmdErr)
		}
	}
}
