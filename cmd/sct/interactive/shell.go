// Package interactive provides the sct interactive shell.
package interactive

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sct-tools/sct-go/cmd/sct/commands"
)

// Shell runs document commands against one loaded session.
type Shell struct {
	session *commands.Session
	rl      *readline.Instance
}

// New creates a shell over session. The session output is redirected
// through readline so that messages do not garble the prompt.
func New(session *commands.Session) (*Shell, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands.DocumentCommands)+2)
	for _, name := range commands.DocumentCommands {
		items = append(items, readline.PcItem(name))
	}
	items = append(items, readline.PcItem("help"), readline.PcItem("quit"))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sct> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    readline.NewPrefixCompleter(items...),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	logger, err := commands.NewLogger(rl.Stderr(), session.Config.LogLevel)
	if err != nil {
		rl.Close()
		return nil, err
	}
	session.Logger = logger
	session.Stdout = rl.Stdout()
	session.Stderr = rl.Stderr()
	return &Shell{session: session, rl: rl}, nil
}

// Run reads commands until quit or EOF.
func (sh *Shell) Run() {
	defer sh.rl.Close()

	sh.printHelp()
	for {
		line, err := sh.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(sh.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			sh.printHelp()
		case "quit", "exit", "q":
			fmt.Fprintln(sh.rl.Stdout(), "Exiting...")
			return
		default:
			if code := sh.session.Exec(cmd, args); code != 0 {
				fmt.Fprintf(sh.rl.Stdout(), "(exit %d)\n", code)
			}
		}
	}
}

func (sh *Shell) printHelp() {
	fmt.Fprintf(sh.rl.Stdout(), `
sct shell - %s

Commands:
  validate                           - Check IED identities
  bind-ied-names [-o file]           - Bind ExtRef iedNames from compas:Flow
  ldepf -settings file [-o file]     - Wire LDEPF ExtRefs
  extrefs -ied NAME -ld INST [-dedupe] - List ExtRefs
  binders -ied NAME -ld INST -pdo DO [-pda DA] [-pln CLASS]
                                     - List binding candidates
  update-binders -info JSON|@file    - Rebind one ExtRef from an ExtRefInfo
  update-source -info JSON|@file     - Set the source of one bound ExtRef
  show [-network file] [-format f]   - Document summary
  save <file>                        - Write the current document
  help                               - Show this help
  quit                               - Exit the shell
`, sh.session.Path)
}
