// Package shell is the interactive front end of the namespace: it reads
// command lines, dispatches them onto tree and persistence operations, and
// renders results. All failures are reported as one "Error: ..." line and
// the session continues; nothing here panics.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"shellfs/internal/config"
	"shellfs/internal/fstree"
	"shellfs/internal/persist"
	"shellfs/internal/util"
)

// Shell owns one namespace tree for the lifetime of a session.
type Shell struct {
	tree    *fstree.Tree
	cfg     *config.Config
	out     io.Writer
	logger  util.Logger
	session string
}

// New creates a Shell with an empty namespace writing human output to out.
func New(cfg *config.Config, out io.Writer) *Shell {
	session := uuid.NewString()
	logger := util.GetLogger("shell").With().Str("session", session).Logger()
	return &Shell{
		tree:    fstree.New(),
		cfg:     cfg,
		out:     out,
		logger:  logger,
		session: session,
	}
}

// Tree exposes the session's namespace, e.g. for preloading a save file.
func (s *Shell) Tree() *fstree.Tree { return s.tree }

// Session returns the session's unique ID.
func (s *Shell) Session() string { return s.session }

// Run reads command lines from r until quit or EOF. Both exits perform the
// implicit save to the configured default file.
func (s *Shell) Run(r io.Reader) error {
	s.logger.Info().Str("save_file", s.cfg.SaveFile).Msg("Session started")
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(s.out, s.cfg.Prompt)
		if !scanner.Scan() {
			// EOF behaves like quit so ^D never loses the namespace
			s.quit()
			return scanner.Err()
		}
		if s.Eval(scanner.Text()) {
			return nil
		}
	}
}

// RunScript evaluates every line of r without prompting. A quit line stops
// the script early; unlike Run, plain EOF does not trigger the implicit
// save.
func (s *Shell) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if s.Eval(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// Eval parses and dispatches one command line and reports whether the
// session should end. Blank lines are ignored.
func (s *Shell) Eval(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd := ParseCommand(fields[0])
	if cmd == CmdUnknown {
		s.errorf("unknown command %q (try menu)", fields[0])
		return false
	}
	if len(fields) > 2 {
		s.errorf("%s takes at most one pathname", cmd)
		return false
	}
	arg := ""
	if len(fields) == 2 {
		arg = fields[1]
	}
	if arg == "" && cmd.needsPath() {
		s.errorf("%s requires a pathname", cmd)
		return false
	}
	return s.dispatch(cmd, arg)
}

// dispatch runs one parsed command against the tree. The switch is
// exhaustive over the Command enumeration.
func (s *Shell) dispatch(cmd Command, arg string) (quit bool) {
	var err error
	switch cmd {
	case CmdMkdir:
		err = s.tree.MakeDirectory(arg)
	case CmdRmdir:
		err = s.tree.RemoveDirectory(arg)
	case CmdLs:
		err = s.list(arg)
	case CmdCd:
		err = s.tree.ChangeDirectory(arg)
	case CmdPwd:
		fmt.Fprintln(s.out, s.tree.WorkingPath())
	case CmdCreat:
		err = s.tree.CreateFile(arg)
	case CmdRm:
		err = s.tree.RemoveFile(arg)
	case CmdSave:
		err = persist.Save(s.savePath(arg), s.tree)
	case CmdReload:
		err = persist.Load(s.savePath(arg), s.tree)
	case CmdMenu:
		s.menu()
	case CmdQuit:
		s.quit()
		return true
	case CmdUnknown:
		// unreachable, Eval rejects unknown keywords
	}
	if err != nil {
		s.logger.Debug().Err(err).Str("command", cmd.String()).Str("arg", arg).Msg("Command failed")
		fmt.Fprintf(s.out, "Error: %s\n", err)
	}
	return false
}

func (s *Shell) list(path string) error {
	entries, err := s.tree.List(path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(s.out, "%s\t%s\n", e.Name, e.Kind)
	}
	return nil
}

// savePath substitutes the configured default when save/reload got no
// argument.
func (s *Shell) savePath(arg string) string {
	if arg == "" {
		return s.cfg.SaveFile
	}
	return arg
}

// quit performs the implicit save before the session ends. A failed save is
// reported but does not block termination.
func (s *Shell) quit() {
	if err := persist.Save(s.cfg.SaveFile, s.tree); err != nil {
		fmt.Fprintf(s.out, "Error: %s\n", err)
	}
	s.logger.Info().Msg("Session ended")
}

func (s *Shell) errorf(format string, args ...any) {
	fmt.Fprintf(s.out, "Error: "+format+"\n", args...)
}

func (s *Shell) menu() {
	fmt.Fprint(s.out, `mkdir <path>   create a directory
rmdir <path>   remove an empty directory
ls [path]      list a directory (default: working directory)
cd [path]      change the working directory
pwd            print the working directory
creat <path>   create an empty file
rm <path>      remove a file
save [path]    save the namespace (default: `+s.cfg.SaveFile+`)
reload [path]  replace the namespace from a save file
menu           show this menu
quit           save to the default file and exit
`)
}
