package shell

// Command enumerates every operation the dispatcher supports. The set is
// closed: parsing maps a keyword onto one of these and dispatch matches
// them exhaustively, so an unsupported keyword can only ever be CmdUnknown.
type Command int

const (
	CmdUnknown Command = iota
	CmdMkdir
	CmdRmdir
	CmdLs
	CmdCd
	CmdPwd
	CmdCreat
	CmdRm
	CmdSave
	CmdReload
	CmdMenu
	CmdQuit
)

var keywords = [...]string{
	CmdUnknown: "?",
	CmdMkdir:   "mkdir",
	CmdRmdir:   "rmdir",
	CmdLs:      "ls",
	CmdCd:      "cd",
	CmdPwd:     "pwd",
	CmdCreat:   "creat",
	CmdRm:      "rm",
	CmdSave:    "save",
	CmdReload:  "reload",
	CmdMenu:    "menu",
	CmdQuit:    "quit",
}

func (c Command) String() string {
	if int(c) < len(keywords) {
		return keywords[c]
	}
	return keywords[CmdUnknown]
}

// ParseCommand maps a command keyword onto the enumeration.
func ParseCommand(word string) Command {
	switch word {
	case "mkdir":
		return CmdMkdir
	case "rmdir":
		return CmdRmdir
	case "ls":
		return CmdLs
	case "cd":
		return CmdCd
	case "pwd":
		return CmdPwd
	case "creat":
		return CmdCreat
	case "rm":
		return CmdRm
	case "save":
		return CmdSave
	case "reload":
		return CmdReload
	case "menu":
		return CmdMenu
	case "quit":
		return CmdQuit
	default:
		return CmdUnknown
	}
}

// needsPath reports whether the command fails without a path argument.
// ls, cd, save, and reload fall back to a default when the argument is
// omitted; pwd, menu, and quit take none.
func (c Command) needsPath() bool {
	switch c {
	case CmdMkdir, CmdRmdir, CmdCreat, CmdRm:
		return true
	default:
		return false
	}
}
